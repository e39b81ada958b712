package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCategoryNotFound is returned when a category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// List returns all categories ordered by ID.
	List(ctx context.Context) ([]*entity.Category, error)

	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// Exists checks the primary, so a category created a moment ago is seen.
	Exists(ctx context.Context, id int64) (bool, error)

	// FindByIDForUpdate reads the row and holds a write lock on it until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Category, error)

	// Create inserts the category and sets its generated ID.
	Create(ctx context.Context, category *entity.Category) error

	Update(ctx context.Context, category *entity.Category) error

	// Delete removes the row. A remaining product reference yields a Conflict error.
	Delete(ctx context.Context, id int64) error

	// SeedIfAbsent inserts the category with its explicit ID unless that ID exists.
	// It reports whether a row was inserted.
	SeedIfAbsent(ctx context.Context, category *entity.Category) (bool, error)

	// SyncIDSequence moves the ID sequence past the highest stored ID.
	SyncIDSequence(ctx context.Context) error

	Count(ctx context.Context) (int64, error)
}
