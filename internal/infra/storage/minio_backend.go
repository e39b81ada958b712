package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"storefront/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const (
	defaultMinIOBucket = "storefront-images"
	minioNoSuchKey     = "NoSuchKey"
)

// minioBackend stores images in a MinIO (or any S3 compatible) bucket.
type minioBackend struct {
	client *minio.Client
	bucket string
}

func newMinIOBackend(cfg config.MinIOConfig) (*minioBackend, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("minio accessKey and secretKey are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}

	bucket := cfg.Bucket
	if bucket == "" {
		bucket = defaultMinIOBucket
	}

	return &minioBackend{client: client, bucket: bucket}, nil
}

func (b *minioBackend) ensureBucket(ctx context.Context, logger *slog.Logger) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return errors.Wrap(err, "check bucket")
	}
	if exists {
		return nil
	}

	if err := b.client.MakeBucket(ctx, b.bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrap(err, "create bucket")
	}
	logger.Info("Created MinIO bucket", slog.String("bucket", b.bucket))

	return nil
}

func (b *minioBackend) write(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := b.client.PutObject(ctx, b.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})

	return errors.Wrapf(err, "upload %s", key)
}

// remove relies on S3 semantics: deleting a missing key succeeds.
func (b *minioBackend) remove(ctx context.Context, key string) error {
	return errors.Wrapf(b.client.RemoveObject(ctx, b.bucket, key, minio.RemoveObjectOptions{}), "remove %s", key)
}

func (b *minioBackend) open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	obj, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrapf(err, "download %s", key)
	}

	// GetObject is lazy; Stat surfaces a missing key.
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == minioNoSuchKey {
			return nil, "", ErrImageNotFound
		}

		return nil, "", errors.Wrapf(err, "stat %s", key)
	}

	return obj, info.ContentType, nil
}

func (b *minioBackend) exists(ctx context.Context, key string) (bool, error) {
	_, err := b.client.StatObject(ctx, b.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == minioNoSuchKey {
			return false, nil
		}

		return false, errors.Wrapf(err, "stat %s", key)
	}

	return true, nil
}

func (b *minioBackend) close() error {
	return nil
}
