package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// List returns products matching the filter ordered by ID.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// Exists checks the primary, so a product created a moment ago is seen.
	Exists(ctx context.Context, id int64) (bool, error)

	// FindByIDForUpdate reads the row and holds a write lock on it until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)

	// CountByCategory returns how many products reference the category.
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)

	// Create inserts the product and sets its generated ID.
	// A missing category yields an InvalidReference error.
	Create(ctx context.Context, product *entity.Product) error

	Update(ctx context.Context, product *entity.Product) error

	Delete(ctx context.Context, id int64) error

	// SeedIfAbsent inserts the product with its explicit ID unless that ID exists.
	SeedIfAbsent(ctx context.Context, product *entity.Product) (bool, error)

	SyncIDSequence(ctx context.Context) error

	Count(ctx context.Context) (int64, error)
}
