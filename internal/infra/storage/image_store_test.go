package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

//nolint:gochecknoglobals
var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	gifBytes  = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	jpegBytes = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
)

func newTestStore(t *testing.T, maxSize int64) *imageStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	b := &blobBackend{bucket: bucket}
	t.Cleanup(func() { _ = b.close() })

	return newImageStore(b, maxSize, slog.New(slog.DiscardHandler))
}

func TestImageStore_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, defaultMaxImageSize)

	ref, err := store.Put(ctx, "categories/abc", pngBytes)
	require.NoError(t, err)
	assert.Equal(t, "categories/abc.png", ref)

	exists, err := store.Exists(ctx, ref)
	require.NoError(t, err)
	assert.True(t, exists)

	body, contentType, err := store.Open(ctx, ref)
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, ref))
	exists, err = store.Exists(ctx, ref)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again is fine.
	assert.NoError(t, store.Delete(ctx, ref))
}

func TestImageStore_PutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, defaultMaxImageSize)

	first, err := store.Put(ctx, "products/p1", jpegBytes)
	require.NoError(t, err)
	second, err := store.Put(ctx, "products/p1", jpegBytes)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".jpg"))
}

func TestImageStore_RejectsBadContent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, 16)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "too large", data: pngBytes},
		{name: "not an image", data: []byte("hello")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Put(ctx, "categories/x", tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidValue))
		})
	}

	ok, err := store.Exists(ctx, "categories/x.png")
	require.NoError(t, err)
	assert.False(t, ok, "rejected content must not be written")
}

func TestImageStore_AcceptsGIF(t *testing.T) {
	store := newTestStore(t, defaultMaxImageSize)

	ref, err := store.Put(context.Background(), "categories/g", gifBytes)
	require.NoError(t, err)
	assert.Equal(t, "categories/g.gif", ref)
}

func TestImageStore_OpenMissing(t *testing.T) {
	store := newTestStore(t, defaultMaxImageSize)

	_, _, err := store.Open(context.Background(), "categories/missing.png")
	assert.ErrorIs(t, err, ErrImageNotFound)

	_, _, err = store.Open(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestCleanRef(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{ref: "categories/a.png", want: true},
		{ref: "", want: false},
		{ref: "/abs.png", want: false},
		{ref: "../up.png", want: false},
		{ref: "a/../../up.png", want: false},
		{ref: "a//b.png", want: false},
		{ref: "a\\b.png", want: false},
	}

	for _, tt := range tests {
		_, ok := cleanRef(tt.ref)
		assert.Equal(t, tt.want, ok, tt.ref)
	}
}

func TestParseMaxImageSize(t *testing.T) {
	size, err := parseMaxImageSize("")
	require.NoError(t, err)
	assert.Equal(t, int64(2_000_000), size)

	size, err = parseMaxImageSize("512KB")
	require.NoError(t, err)
	assert.Equal(t, int64(512_000), size)

	_, err = parseMaxImageSize("lots")
	assert.Error(t, err)

	_, err = parseMaxImageSize("0B")
	assert.Error(t, err)
}
