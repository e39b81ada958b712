// Package storage implements the image store on top of object storage.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	DriverBlob  = "blob"
	DriverMinIO = "minio"

	defaultMaxImageSize = 2 * bytes.MB
	defaultBucketURL    = "mem://"
)

// allowedImageTypes maps accepted content types to the extension used in references.
//
//nolint:gochecknoglobals
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ErrImageNotFound is returned by Open when the reference points at nothing.
// It matches domainerrors.ErrNotFound.
var ErrImageNotFound = domainerrors.ErrNotFound.WithDetails("image not found")

// backend is the minimal object storage surface the image store needs.
type backend interface {
	write(ctx context.Context, key string, data []byte, contentType string) error
	// remove must succeed when the key does not exist.
	remove(ctx context.Context, key string) error
	open(ctx context.Context, key string) (io.ReadCloser, string, error)
	exists(ctx context.Context, key string) (bool, error)
	close() error
}

type imageStore struct {
	backend backend
	maxSize int64
	logger  *slog.Logger
}

// Params holds dependencies for the image store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore builds the image store for the configured driver.
func NewImageStore(params Params) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		cfg = &config.StorageConfig{}
	}

	maxSize, err := parseMaxImageSize(cfg.MaxImageSize)
	if err != nil {
		return nil, err
	}

	var b backend
	switch cfg.Driver {
	case "", DriverBlob:
		bucketURL := cfg.BucketURL
		if bucketURL == "" {
			bucketURL = defaultBucketURL
			params.Logger.Warn("storage.bucketUrl not set, images are kept in memory only")
		}

		b, err = newBlobBackend(context.Background(), bucketURL)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using blob image store", slog.String("bucket_url", bucketURL))

	case DriverMinIO:
		mb, err := newMinIOBackend(cfg.MinIO)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return mb.ensureBucket(ctx, params.Logger)
			},
		})
		b = mb
		params.Logger.Info("Using MinIO image store",
			slog.String("endpoint", cfg.MinIO.Endpoint),
			slog.String("bucket", mb.bucket),
		)

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return b.close()
		},
	})

	return newImageStore(b, maxSize, params.Logger), nil
}

func newImageStore(b backend, maxSize int64, logger *slog.Logger) *imageStore {
	return &imageStore{backend: b, maxSize: maxSize, logger: logger}
}

func parseMaxImageSize(raw string) (int64, error) {
	if raw == "" {
		return defaultMaxImageSize, nil
	}

	size, err := bytes.Parse(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid storage.maxImageSize %q", raw)
	}
	if size <= 0 {
		return 0, errors.Errorf("storage.maxImageSize must be positive, got %q", raw)
	}

	return size, nil
}

// Put validates data and stores it under hint plus the extension of its sniffed type.
func (s *imageStore) Put(ctx context.Context, hint string, data []byte) (string, error) {
	contentType, ext, err := s.validate(data)
	if err != nil {
		return "", err
	}

	key, ok := cleanRef(hint)
	if !ok {
		return "", domainerrors.ErrInvalidValue.WithDetails("invalid image reference hint")
	}
	ref := key + ext

	if err := s.backend.write(ctx, ref, data, contentType); err != nil {
		return "", errors.Wrapf(domainerrors.ErrStoreUnavailable, "failed to store image %s: %v", ref, err)
	}

	s.logger.Debug("Image stored",
		slog.String("ref", ref),
		slog.String("size", bytes.FormatDecimal(int64(len(data)))),
	)

	return ref, nil
}

// Delete removes the image. Unknown or empty references are not an error.
func (s *imageStore) Delete(ctx context.Context, ref string) error {
	key, ok := cleanRef(ref)
	if !ok {
		return nil
	}

	if err := s.backend.remove(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete image %s", key)
	}

	return nil
}

// Open returns the image body and its stored content type.
func (s *imageStore) Open(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	key, ok := cleanRef(ref)
	if !ok {
		return nil, "", ErrImageNotFound
	}

	return s.backend.open(ctx, key)
}

func (s *imageStore) Exists(ctx context.Context, ref string) (bool, error) {
	key, ok := cleanRef(ref)
	if !ok {
		return false, nil
	}

	return s.backend.exists(ctx, key)
}

func (s *imageStore) validate(data []byte) (string, string, error) {
	if len(data) == 0 {
		return "", "", domainerrors.ErrInvalidValue.WithDetails("image is empty")
	}
	if int64(len(data)) > s.maxSize {
		return "", "", domainerrors.ErrInvalidValue.WithDetails("image exceeds " + bytes.FormatDecimal(s.maxSize))
	}

	detected := mimetype.Detect(data)
	for contentType, ext := range allowedImageTypes {
		if detected.Is(contentType) {
			return contentType, ext, nil
		}
	}

	return "", "", domainerrors.ErrInvalidValue.WithDetails("unsupported image type " + detected.String())
}

// cleanRef rejects empty, absolute and parent-relative references.
func cleanRef(ref string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "/") || strings.Contains(ref, "\\") {
		return "", false
	}

	cleaned := path.Clean(ref)
	if cleaned == "." || cleaned != ref || strings.HasPrefix(cleaned, "..") {
		return "", false
	}

	return cleaned, true
}
