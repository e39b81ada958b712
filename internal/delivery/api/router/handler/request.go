package handler

import (
	"io"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

const photoField = "photo"

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidValue.WithDetails("invalid " + name)
	}

	return id, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// readUpload returns the optional photo of a multipart request. JSON requests
// never carry an image.
func readUpload(c echo.Context) (*entity.ImageUpload, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrInvalidValue.WithDetails("malformed multipart body")
	}

	files := form.File[photoField]
	if len(files) == 0 {
		return nil, nil
	}

	file, err := files[0].Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded photo")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded photo")
	}

	return &entity.ImageUpload{FileName: files[0].Filename, Data: data}, nil
}
