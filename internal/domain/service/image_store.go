package service

import (
	"context"
	"io"
)

// ImageStore persists opaque image content under references it generates.
//
// Put derives the reference from hint and the detected content type, so equal
// hint and data always yield the same reference. Delete of an unknown reference
// succeeds. Content that is empty, too large or not an image is rejected before
// anything is written.
type ImageStore interface {
	Put(ctx context.Context, hint string, data []byte) (ref string, err error)
	Delete(ctx context.Context, ref string) error
	Open(ctx context.Context, ref string) (body io.ReadCloser, contentType string, err error)
	Exists(ctx context.Context, ref string) (bool, error)
}
