package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// imageCacheControl allows long caching since a reference never changes content.
const imageCacheControl = "public, max-age=86400"

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	Images service.ImageStore
	Logger *slog.Logger
}

// ImageHandler streams stored catalog images.
type ImageHandler struct {
	images service.ImageStore
	logger *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		images: params.Images,
		logger: params.Logger,
	}
}

// ServeImage streams the image stored under the wildcard path.
func (h *ImageHandler) ServeImage(c echo.Context) error {
	body, contentType, err := h.images.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer body.Close()

	c.Response().Header().Set("Cache-Control", imageCacheControl)

	return c.Stream(http.StatusOK, contentType, body)
}
