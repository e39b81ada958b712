package handler

import (
	"io"
	"net/http"
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestImageHandler_ServeImage(t *testing.T) {
	t.Run("streams content", func(t *testing.T) {
		images := mockService.NewMockImageStore(t)
		images.EXPECT().
			Open(mock.Anything, "products/abc.png").
			Return(io.NopCloser(strings.NewReader("png-bytes")), "image/png", nil).
			Once()
		h := NewImageHandler(ImageHandlerParams{Images: images, Logger: newDiscardLogger()})

		rec := serve(t, h.ServeImage, request{method: http.MethodGet, target: "/images/products/abc.png", params: map[string]string{"*": "products/abc.png"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, imageCacheControl, rec.Header().Get("Cache-Control"))
		assert.Equal(t, "png-bytes", rec.Body.String())
	})

	t.Run("missing image", func(t *testing.T) {
		images := mockService.NewMockImageStore(t)
		images.EXPECT().
			Open(mock.Anything, "products/gone.png").
			Return(nil, "", domainerrors.ErrNotFound.WithDetails("image not found")).
			Once()
		h := NewImageHandler(ImageHandlerParams{Images: images, Logger: newDiscardLogger()})

		rec := serve(t, h.ServeImage, request{method: http.MethodGet, target: "/images/products/gone.png", params: map[string]string{"*": "products/gone.png"}})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
