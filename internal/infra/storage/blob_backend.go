package storage

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes accepted by storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobBackend stores images in any gocloud bucket.
type blobBackend struct {
	bucket *blob.Bucket
}

func newBlobBackend(ctx context.Context, bucketURL string) (*blobBackend, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobBackend{bucket: bucket}, nil
}

func (b *blobBackend) write(ctx context.Context, key string, data []byte, contentType string) error {
	return errors.WithStack(b.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}))
}

func (b *blobBackend) remove(ctx context.Context, key string) error {
	err := b.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.WithStack(err)
	}

	return nil
}

func (b *blobBackend) open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := b.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", ErrImageNotFound
		}

		return nil, "", errors.WithStack(err)
	}

	return reader, reader.ContentType(), nil
}

func (b *blobBackend) exists(ctx context.Context, key string) (bool, error) {
	ok, err := b.bucket.Exists(ctx, key)

	return ok, errors.WithStack(err)
}

func (b *blobBackend) close() error {
	return errors.WithStack(b.bucket.Close())
}
