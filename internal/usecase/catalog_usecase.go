package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CategoryInput holds the writable fields of a category.
type CategoryInput struct {
	Name  string
	Color string
}

// ProductInput holds the writable fields of a product.
type ProductInput struct {
	CategoryID  int64
	Name        string
	Description string
	Quantity    int
	CostValue   decimal.Decimal
	SaleValue   decimal.Decimal
	Featured    bool
}

// MutationOutput is the committed entity plus warnings about post-commit cleanup
// that did not complete. Warnings never mean the mutation failed.
type MutationOutput[T any] struct {
	Entity   T
	Warnings []string
}

// CatalogUsecase defines category and product reads and mutations.
// Every mutation is atomic against the store; images are written before the
// row and old images are removed only after the row commits.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput, image *entity.ImageUpload) (*MutationOutput[*entity.Category], error)
	UpdateCategory(ctx context.Context, id int64, input *CategoryInput, image *entity.ImageUpload) (*MutationOutput[*entity.Category], error)
	DeleteCategory(ctx context.Context, id int64) (*MutationOutput[*entity.Category], error)

	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput, image *entity.ImageUpload) (*MutationOutput[*entity.Product], error)
	UpdateProduct(ctx context.Context, id int64, input *ProductInput, image *entity.ImageUpload) (*MutationOutput[*entity.Product], error)
	DeleteProduct(ctx context.Context, id int64) (*MutationOutput[*entity.Product], error)

	// ProductLabel renders a PNG QR code pointing at the product's public page.
	ProductLabel(ctx context.Context, id int64) ([]byte, error)
}
