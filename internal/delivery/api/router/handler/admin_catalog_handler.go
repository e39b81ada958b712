package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AdminCatalogHandlerParams holds dependencies for AdminCatalogHandler, injected by Fx.
type AdminCatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// AdminCatalogHandler serves catalog mutations. Every route is Administrator only.
type AdminCatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewAdminCatalogHandler is the constructor for AdminCatalogHandler
func NewAdminCatalogHandler(params AdminCatalogHandlerParams) *AdminCatalogHandler {
	return &AdminCatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CategoryRequest represents the writable category fields
type CategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"max=32"`
}

// ProductRequest represents the writable product fields.
// Money accepts JSON numbers or decimal strings.
type ProductRequest struct {
	CategoryID  int64           `json:"category_id"`
	Name        string          `json:"name" validate:"required,max=150"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	CostValue   decimal.Decimal `json:"cost_value"`
	SaleValue   decimal.Decimal `json:"sale_value"`
	Featured    bool            `json:"featured"`
}

// CreateCategory handles category creation with an optional photo
func (h *AdminCatalogHandler) CreateCategory(c echo.Context) error {
	req, err := h.bindCategory(c)
	if err != nil {
		return err
	}

	image, err := readUpload(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.catalogUC.CreateCategory(c.Request().Context(), req.toInput(), image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithWarnings(c, http.StatusCreated, newCategoryView(output.Entity), output.Warnings)
}

// UpdateCategory handles category updates. Without a photo the stored one is kept.
func (h *AdminCatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	req, err := h.bindCategory(c)
	if err != nil {
		return err
	}

	image, err := readUpload(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.catalogUC.UpdateCategory(c.Request().Context(), id, req.toInput(), image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithWarnings(c, http.StatusOK, newCategoryView(output.Entity), output.Warnings)
}

// DeleteCategory handles deletion of a category that has no products
func (h *AdminCatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.catalogUC.DeleteCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithWarnings(c, http.StatusOK, newCategoryView(output.Entity), output.Warnings)
}

// CreateProduct handles product creation with an optional photo
func (h *AdminCatalogHandler) CreateProduct(c echo.Context) error {
	req, err := h.bindProduct(c)
	if err != nil {
		return err
	}

	image, err := readUpload(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.catalogUC.CreateProduct(c.Request().Context(), req.toInput(), image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithWarnings(c, http.StatusCreated, newProductView(output.Entity), output.Warnings)
}

// UpdateProduct handles product updates. Without a photo the stored one is kept.
func (h *AdminCatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	req, err := h.bindProduct(c)
	if err != nil {
		return err
	}

	image, err := readUpload(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.catalogUC.UpdateProduct(c.Request().Context(), id, req.toInput(), image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithWarnings(c, http.StatusOK, newProductView(output.Entity), output.Warnings)
}

// DeleteProduct handles product deletion
func (h *AdminCatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.catalogUC.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithWarnings(c, http.StatusOK, newProductView(output.Entity), output.Warnings)
}

// ProductLabel returns the product's QR label as a PNG
func (h *AdminCatalogHandler) ProductLabel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.catalogUC.ProductLabel(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "inline; filename=product-"+strconv.FormatInt(id, 10)+".png")

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *AdminCatalogHandler) bindCategory(c echo.Context) (*CategoryRequest, error) {
	req := &CategoryRequest{}
	if isMultipart(c) {
		req.Name = c.FormValue("name")
		req.Color = c.FormValue("color")
	} else if err := c.Bind(req); err != nil {
		return nil, domainerrors.ErrInvalidValue.WithDetails("invalid category input")
	}

	if err := c.Validate(req); err != nil {
		return nil, errors.WithStack(err)
	}

	return req, nil
}

func (h *AdminCatalogHandler) bindProduct(c echo.Context) (*ProductRequest, error) {
	req := &ProductRequest{}
	if isMultipart(c) {
		if err := productFromForm(c, req); err != nil {
			return nil, err
		}
	} else if err := c.Bind(req); err != nil {
		return nil, domainerrors.ErrInvalidValue.WithDetails("invalid product input")
	}

	if err := c.Validate(req); err != nil {
		return nil, errors.WithStack(err)
	}

	return req, nil
}

// productFromForm reads product fields from multipart form values. Empty
// numeric fields keep their zero value.
func productFromForm(c echo.Context, req *ProductRequest) error {
	req.Name = c.FormValue("name")
	req.Description = c.FormValue("description")

	var err error
	if raw := strings.TrimSpace(c.FormValue("category_id")); raw != "" {
		if req.CategoryID, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return domainerrors.ErrInvalidValue.WithDetails("category_id must be an integer")
		}
	}
	if raw := strings.TrimSpace(c.FormValue("quantity")); raw != "" {
		if req.Quantity, err = strconv.Atoi(raw); err != nil {
			return domainerrors.ErrInvalidValue.WithDetails("quantity must be an integer")
		}
	}
	if raw := strings.TrimSpace(c.FormValue("cost_value")); raw != "" {
		if req.CostValue, err = decimal.NewFromString(raw); err != nil {
			return domainerrors.ErrInvalidValue.WithDetails("cost_value must be a decimal number")
		}
	}
	if raw := strings.TrimSpace(c.FormValue("sale_value")); raw != "" {
		if req.SaleValue, err = decimal.NewFromString(raw); err != nil {
			return domainerrors.ErrInvalidValue.WithDetails("sale_value must be a decimal number")
		}
	}
	if raw := strings.TrimSpace(c.FormValue("featured")); raw != "" {
		if req.Featured, err = strconv.ParseBool(raw); err != nil {
			return domainerrors.ErrInvalidValue.WithDetails("featured must be true or false")
		}
	}

	return nil
}

func (r *CategoryRequest) toInput() *usecase.CategoryInput {
	return &usecase.CategoryInput{
		Name:  r.Name,
		Color: r.Color,
	}
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		Quantity:    r.Quantity,
		CostValue:   r.CostValue,
		SaleValue:   r.SaleValue,
		Featured:    r.Featured,
	}
}
