package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// categoryRepository implements repository.CategoryRepository using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns all categories ordered by ID.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&categoryMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindByID retrieves a category by ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// Exists reports whether the category row is present on the primary.
func (repo *categoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.CategoryModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check category")
	}

	return count > 0, nil
}

// FindByIDForUpdate locks the category row for the rest of the transaction.
func (repo *categoryRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Category, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *categoryRepository) find(db *gorm.DB, id int64) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := db.Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

// Create inserts the category and copies the generated ID back.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)
	categoryM.ID = 0

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return categoryWriteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// Update writes every mutable column of the category.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":       category.Name,
			"color":      category.Color,
			"photo_ref":  category.PhotoRef,
			"updated_at": now,
		})
	if result.Error != nil {
		return categoryWriteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	category.UpdatedAt = now

	return nil
}

// Delete removes the category. Products still pointing at it make the store refuse.
func (repo *categoryRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("category still has products")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// SeedIfAbsent inserts the category with its explicit ID, skipping existing rows.
func (repo *categoryRepository) SeedIfAbsent(ctx context.Context, category *entity.Category) (bool, error) {
	categoryM := fromCategoryDomain(category)
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(categoryM)
	if result.Error != nil {
		return false, categoryWriteError(result.Error, "failed to seed category")
	}

	return result.RowsAffected == 1, nil
}

// SyncIDSequence moves the serial sequence past explicitly inserted IDs.
func (repo *categoryRepository) SyncIDSequence(ctx context.Context) error {
	return syncIDSequence(ctx, repo.db, model.CategoryModel{}.TableName())
}

// Count returns the number of stored categories.
func (repo *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count categories")
	}

	return count, nil
}

func categoryWriteError(err error, details string) error {
	if isValueTooLong(err) {
		return domainerrors.ErrInvalidValue.WithDetails("category name or color is too long")
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrInvalidValue.WithDetails(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// syncIDSequence sets the table's id sequence so the next generated value follows MAX(id).
func syncIDSequence(ctx context.Context, db *gorm.DB, table string) error {
	// table is always a model TableName, never user input.
	sql := "SELECT setval(pg_get_serial_sequence('" + table + "', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM " + table
	if err := db.WithContext(ctx).Exec(sql).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to sync "+table+" id sequence")
	}

	return nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		Color:     data.Color,
		PhotoRef:  data.PhotoRef,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:        data.ID,
		Name:      data.Name,
		Color:     data.Color,
		PhotoRef:  data.PhotoRef,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
