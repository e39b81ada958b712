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

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns products matching the filter ordered by ID.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Order("id")
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}

	var productMs []*model.ProductModel
	if err := query.Find(&productMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// Exists reports whether the product row is present on the primary.
func (repo *productRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check product")
	}

	return count > 0, nil
}

// FindByIDForUpdate locks the product row for the rest of the transaction.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *productRepository) find(db *gorm.DB, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := db.Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products by category")
	}

	return count, nil
}

// Create inserts the product and copies the generated ID back.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.ID = 0

	// Featured=false and Quantity=0 carry column defaults, so list them explicitly.
	err := repo.db.WithContext(ctx).
		Select("CategoryID", "Name", "Description", "Quantity", "CostValue", "SaleValue", "Featured", "PhotoRef", "CreatedAt", "UpdatedAt").
		Create(productM).Error
	if err != nil {
		return productWriteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update writes every mutable column of the product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"category_id": product.CategoryID,
			"name":        product.Name,
			"description": product.Description,
			"quantity":    product.Quantity,
			"cost_value":  product.CostValue,
			"sale_value":  product.SaleValue,
			"featured":    product.Featured,
			"photo_ref":   product.PhotoRef,
			"updated_at":  now,
		})
	if result.Error != nil {
		return productWriteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = now

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SeedIfAbsent inserts the product with its explicit ID, skipping existing rows.
func (repo *productRepository) SeedIfAbsent(ctx context.Context, product *entity.Product) (bool, error) {
	productM := fromProductDomain(product)
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Select("ID", "CategoryID", "Name", "Description", "Quantity", "CostValue", "SaleValue", "Featured", "PhotoRef", "CreatedAt", "UpdatedAt").
		Create(productM)
	if result.Error != nil {
		return false, productWriteError(result.Error, "failed to seed product")
	}

	return result.RowsAffected == 1, nil
}

func (repo *productRepository) SyncIDSequence(ctx context.Context) error {
	return syncIDSequence(ctx, repo.db, model.ProductModel{}.TableName())
}

func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products")
	}

	return count, nil
}

// productWriteError maps constraint violations raised by product writes.
func productWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrInvalidReference.WithDetails("category does not exist")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrInvalidValue.WithDetails("quantity and values must not be negative")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrInvalidValue.WithDetails("missing required product information")
	case isValueTooLong(err):
		return domainerrors.ErrInvalidValue.WithDetails("product name is too long")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Quantity:    data.Quantity,
		CostValue:   data.CostValue,
		SaleValue:   data.SaleValue,
		Featured:    data.Featured,
		PhotoRef:    data.PhotoRef,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Quantity:    data.Quantity,
		CostValue:   data.CostValue,
		SaleValue:   data.SaleValue,
		Featured:    data.Featured,
		PhotoRef:    data.PhotoRef,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
