package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// Column widths of the catalog tables.
const (
	maxCategoryNameLength  = 100
	maxCategoryColorLength = 32
	maxProductNameLength   = 150
)

// catalogService implements the CatalogUsecase interface.
//
// Every mutation runs Validated -> ImagePersisted -> RowCommitted -> OldImagePurged.
// A failure before the commit leaves the store unchanged and removes the image
// written for it; a failure after the commit is reported as a warning.
type catalogService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	images       service.ImageStore
	cache        service.CatalogCache
	publisher    service.EventPublisher
	labels       service.QRCodeService
	newImageHint func(kind entity.ImageKind) string
	now          func() time.Time
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	ImageStore   service.ImageStore
	Cache        service.CatalogCache
	Publisher    service.EventPublisher
	QRCode       service.QRCodeService
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		images:       params.ImageStore,
		cache:        params.Cache,
		publisher:    params.Publisher,
		labels:       params.QRCode,
		newImageHint: newImageHint,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Categories ---

// ListCategories returns every category ordered by ID.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	if srv.cacheGet(ctx, cacheKeyCategories, &categories) {
		return categories, nil
	}

	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	srv.cacheSet(ctx, cacheKeyCategories, categories)

	return categories, nil
}

// GetCategory returns the category or NotFound.
func (srv *catalogService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	key := categoryCacheKey(id)

	var category entity.Category
	if srv.cacheGet(ctx, key, &category) {
		return &category, nil
	}

	found, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, categoryLookupError(err)
	}
	srv.cacheSet(ctx, key, found)

	return found, nil
}

// CreateCategory stores the image first, then the row.
func (srv *catalogService) CreateCategory(
	ctx context.Context,
	input *usecase.CategoryInput,
	image *entity.ImageUpload,
) (*usecase.MutationOutput[*entity.Category], error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	photoRef, err := srv.putImage(ctx, entity.ImageKindCategory, image)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:     strings.TrimSpace(input.Name),
		Color:    strings.TrimSpace(input.Color),
		PhotoRef: photoRef,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CategoryRepo().Create(ctx, category)
	})
	if err != nil {
		srv.discardImage(ctx, photoRef)

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Int64("categoryID", category.ID))
	srv.afterCommit(ctx, service.CatalogEventCategoryCreated, category.ID, category.PhotoRef)

	return &usecase.MutationOutput[*entity.Category]{Entity: category}, nil
}

// UpdateCategory replaces the writable fields and, when an image is given, the photo.
// Without an image the photo reference is kept.
func (srv *catalogService) UpdateCategory(
	ctx context.Context,
	id int64,
	input *usecase.CategoryInput,
	image *entity.ImageUpload,
) (*usecase.MutationOutput[*entity.Category], error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	// Existence is checked before anything is written.
	exists, err := srv.categoryRepo.Exists(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check category")
	}
	if !exists {
		return nil, domainerrors.ErrNotFound.WithDetails("category not found")
	}

	newRef, err := srv.putImage(ctx, entity.ImageKindCategory, image)
	if err != nil {
		return nil, err
	}

	var (
		category *entity.Category
		oldRef   string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		current, err := categoryRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return categoryLookupError(err)
		}

		oldRef = current.PhotoRef
		current.Name = strings.TrimSpace(input.Name)
		current.Color = strings.TrimSpace(input.Color)
		if newRef != "" {
			current.PhotoRef = newRef
		}

		if err := categoryRepo.Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update category")
		}
		category = current

		return nil
	})
	if err != nil {
		srv.discardImage(ctx, newRef)

		return nil, err
	}

	output := &usecase.MutationOutput[*entity.Category]{Entity: category}
	if newRef != "" && oldRef != newRef {
		output.Warnings = srv.purgeImage(ctx, oldRef)
	}

	srv.log(ctx).Info("Category updated", slog.Int64("categoryID", id))
	srv.afterCommit(ctx, service.CatalogEventCategoryUpdated, id, category.PhotoRef)

	return output, nil
}

// DeleteCategory removes a category that no product references.
func (srv *catalogService) DeleteCategory(ctx context.Context, id int64) (*usecase.MutationOutput[*entity.Category], error) {
	var deleted *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		current, err := categoryRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return categoryLookupError(err)
		}

		count, err := repoFactory.ProductRepo().CountByCategory(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count category products")
		}
		if count > 0 {
			return domainerrors.ErrConflict.WithDetails(fmt.Sprintf("category still has %d products", count))
		}

		if err := categoryRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete category")
		}
		deleted = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	output := &usecase.MutationOutput[*entity.Category]{
		Entity:   deleted,
		Warnings: srv.purgeImage(ctx, deleted.PhotoRef),
	}

	srv.log(ctx).Info("Category deleted", slog.Int64("categoryID", id))
	srv.afterCommit(ctx, service.CatalogEventCategoryDeleted, id, deleted.PhotoRef)

	return output, nil
}

// --- Products ---

// ListProducts returns products matching the filter ordered by ID.
func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	key := productListCacheKey(filter)

	var products []*entity.Product
	if srv.cacheGet(ctx, key, &products) {
		return products, nil
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	srv.cacheSet(ctx, key, products)

	return products, nil
}

// GetProduct returns the product or NotFound.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	key := productCacheKey(id)

	var product entity.Product
	if srv.cacheGet(ctx, key, &product) {
		return &product, nil
	}

	found, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, productLookupError(err)
	}
	srv.cacheSet(ctx, key, found)

	return found, nil
}

// CreateProduct stores the image first, then the row. The category must exist.
func (srv *catalogService) CreateProduct(
	ctx context.Context,
	input *usecase.ProductInput,
	image *entity.ImageUpload,
) (*usecase.MutationOutput[*entity.Product], error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	if err := ensureCategoryExists(ctx, srv.categoryRepo, input.CategoryID); err != nil {
		return nil, err
	}

	photoRef, err := srv.putImage(ctx, entity.ImageKindProduct, image)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{PhotoRef: photoRef}
	applyProductInput(product, input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The category may have been deleted since the check above.
		if err := ensureCategoryExists(ctx, repoFactory.CategoryRepo(), input.CategoryID); err != nil {
			return err
		}

		return repoFactory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		srv.discardImage(ctx, photoRef)

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.Int64("categoryID", product.CategoryID))
	srv.afterCommit(ctx, service.CatalogEventProductCreated, product.ID, product.PhotoRef)

	return &usecase.MutationOutput[*entity.Product]{Entity: product}, nil
}

// UpdateProduct replaces the writable fields and, when an image is given, the photo.
func (srv *catalogService) UpdateProduct(
	ctx context.Context,
	id int64,
	input *usecase.ProductInput,
	image *entity.ImageUpload,
) (*usecase.MutationOutput[*entity.Product], error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	exists, err := srv.productRepo.Exists(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check product")
	}
	if !exists {
		return nil, domainerrors.ErrNotFound.WithDetails("product not found")
	}
	if err := ensureCategoryExists(ctx, srv.categoryRepo, input.CategoryID); err != nil {
		return nil, err
	}

	newRef, err := srv.putImage(ctx, entity.ImageKindProduct, image)
	if err != nil {
		return nil, err
	}

	var (
		product *entity.Product
		oldRef  string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		current, err := productRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return productLookupError(err)
		}
		if err := ensureCategoryExists(ctx, repoFactory.CategoryRepo(), input.CategoryID); err != nil {
			return err
		}

		oldRef = current.PhotoRef
		applyProductInput(current, input)
		if newRef != "" {
			current.PhotoRef = newRef
		}

		if err := productRepo.Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = current

		return nil
	})
	if err != nil {
		srv.discardImage(ctx, newRef)

		return nil, err
	}

	output := &usecase.MutationOutput[*entity.Product]{Entity: product}
	if newRef != "" && oldRef != newRef {
		output.Warnings = srv.purgeImage(ctx, oldRef)
	}

	srv.log(ctx).Info("Product updated", slog.Int64("productID", id))
	srv.afterCommit(ctx, service.CatalogEventProductUpdated, id, product.PhotoRef)

	return output, nil
}

// DeleteProduct removes the product and then its image.
func (srv *catalogService) DeleteProduct(ctx context.Context, id int64) (*usecase.MutationOutput[*entity.Product], error) {
	var deleted *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		current, err := productRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return productLookupError(err)
		}

		if err := productRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}
		deleted = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	output := &usecase.MutationOutput[*entity.Product]{
		Entity:   deleted,
		Warnings: srv.purgeImage(ctx, deleted.PhotoRef),
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))
	srv.afterCommit(ctx, service.CatalogEventProductDeleted, id, deleted.PhotoRef)

	return output, nil
}

// ProductLabel renders the QR label of an existing product.
func (srv *catalogService) ProductLabel(ctx context.Context, id int64) ([]byte, error) {
	if _, err := srv.productRepo.FindByID(ctx, id); err != nil {
		return nil, productLookupError(err)
	}

	png, err := srv.labels.GenerateProductLabel(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product label")
	}

	return png, nil
}

// --- Validation ---

func validateCategoryInput(input *usecase.CategoryInput) error {
	if input == nil {
		return domainerrors.ErrInvalidValue.WithDetails("category data is required")
	}

	if err := validateName(input.Name, "category", maxCategoryNameLength); err != nil {
		return err
	}
	if utf8.RuneCountInString(strings.TrimSpace(input.Color)) > maxCategoryColorLength {
		return domainerrors.ErrInvalidValue.WithDetails(fmt.Sprintf("color must be at most %d characters", maxCategoryColorLength))
	}

	return nil
}

func validateProductInput(input *usecase.ProductInput) error {
	if input == nil {
		return domainerrors.ErrInvalidValue.WithDetails("product data is required")
	}
	if err := validateName(input.Name, "product", maxProductNameLength); err != nil {
		return err
	}

	switch {
	case input.Quantity < 0:
		return domainerrors.ErrInvalidValue.WithDetails("quantity must not be negative")
	case input.CostValue.IsNegative():
		return domainerrors.ErrInvalidValue.WithDetails("cost value must not be negative")
	case input.SaleValue.IsNegative():
		return domainerrors.ErrInvalidValue.WithDetails("sale value must not be negative")
	case input.CategoryID <= 0:
		return domainerrors.ErrInvalidReference.WithDetails("category does not exist")
	}

	return nil
}

func validateName(name, what string, maxLength int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domainerrors.ErrInvalidValue.WithDetails(what + " name is required")
	}
	if utf8.RuneCountInString(name) > maxLength {
		return domainerrors.ErrInvalidValue.WithDetails(fmt.Sprintf("%s name must be at most %d characters", what, maxLength))
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.CategoryID = input.CategoryID
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Quantity = input.Quantity
	product.CostValue = input.CostValue
	product.SaleValue = input.SaleValue
	product.Featured = input.Featured
}

func ensureCategoryExists(ctx context.Context, repo repository.CategoryRepository, categoryID int64) error {
	exists, err := repo.Exists(ctx, categoryID)
	if err != nil {
		return errors.Wrap(err, "failed to check category")
	}
	if !exists {
		return domainerrors.ErrInvalidReference.WithDetails("category does not exist")
	}

	return nil
}

func categoryLookupError(err error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrNotFound.WithDetails("category not found")
	}

	return errors.Wrap(err, "failed to find category")
}

func productLookupError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrNotFound.WithDetails("product not found")
	}

	return errors.Wrap(err, "failed to find product")
}
