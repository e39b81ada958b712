package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
	hasher    service.PasswordHasher
	seed      config.SeedConfig
	logger    *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	RoleRepo  repository.RoleRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	srv := &seedService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		roleRepo:  params.RoleRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Seed != nil {
		srv.seed = *params.Config.Seed
	}

	return srv
}

// Apply inserts whatever bootstrap rows are missing. Existing rows are never modified.
func (srv *seedService) Apply(ctx context.Context) (*usecase.SeedReport, error) {
	report := &usecase.SeedReport{}
	if !srv.seed.Enabled {
		srv.logger.Info("Seeding disabled")

		return report, nil
	}

	rolesCreated, err := srv.seedRoles(ctx)
	if err != nil {
		return nil, err
	}
	report.RolesCreated = rolesCreated

	adminCreated, err := srv.seedAdmin(ctx)
	if err != nil {
		return nil, err
	}
	report.AdminCreated = adminCreated

	if err := srv.seedCatalog(ctx, report); err != nil {
		return nil, err
	}

	srv.logger.Info("Seed applied",
		slog.Int("rolesCreated", report.RolesCreated),
		slog.Bool("adminCreated", report.AdminCreated),
		slog.Int("categoriesCreated", report.CategoriesCreated),
		slog.Int("productsCreated", report.ProductsCreated))

	return report, nil
}

func (srv *seedService) seedRoles(ctx context.Context) (int, error) {
	before, err := srv.roleRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count roles")
	}

	for _, role := range entity.BuiltinRoles() {
		if _, err := srv.roleRepo.EnsureRole(ctx, role); err != nil {
			return 0, errors.Wrapf(err, "failed to ensure role %s", role)
		}
	}

	after, err := srv.roleRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count roles")
	}

	return int(after - before), nil
}

// seedAdmin creates the bootstrap administrator. Without a configured password
// the account is skipped; no built-in password is ever used.
func (srv *seedService) seedAdmin(ctx context.Context) (bool, error) {
	admin := srv.seed.Admin
	email := strings.TrimSpace(admin.Email)
	if email == "" {
		return false, nil
	}

	normalized := entity.NormalizeEmail(email)
	existing, err := srv.userRepo.FindByNormalizedEmail(ctx, normalized)
	if err == nil {
		// Re-assigning is a no-op and repairs an account that lost the role.
		if err := srv.roleRepo.AssignRole(ctx, existing.ID, entity.RoleAdministrator); err != nil {
			return false, errors.Wrap(err, "failed to assign administrator role")
		}

		return false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return false, errors.Wrap(err, "failed to look up administrator")
	}

	if admin.Password == "" {
		srv.logger.Warn("Administrator account not seeded: seed.admin.password is empty", slog.String("email", email))

		return false, nil
	}
	if err := srv.hasher.ValidatePasswordStrength(admin.Password); err != nil {
		return false, errors.Wrap(err, "seed administrator password rejected")
	}

	hash, err := srv.hasher.Hash(admin.Password)
	if err != nil {
		return false, errors.Wrap(err, "failed to hash administrator password")
	}

	user := &entity.User{
		Email:           email,
		NormalizedEmail: normalized,
		PasswordHash:    hash,
		Name:            strings.TrimSpace(admin.Name),
		EmailConfirmed:  true,
		LockoutEnabled:  true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create administrator")
		}

		return repoFactory.RoleRepo().AssignRole(ctx, user.ID, entity.RoleAdministrator)
	})
	if err != nil {
		return false, err
	}

	srv.logger.Info("Administrator account seeded", slog.String("userID", user.ID.String()))

	return true, nil
}

func (srv *seedService) seedCatalog(ctx context.Context, report *usecase.SeedReport) error {
	if len(srv.seed.Categories) == 0 && len(srv.seed.Products) == 0 {
		return nil
	}

	categories := make([]*entity.Category, 0, len(srv.seed.Categories))
	for _, seed := range srv.seed.Categories {
		if seed.ID <= 0 || strings.TrimSpace(seed.Name) == "" {
			return domainerrors.ErrInvalidValue.WithDetails("seed categories need an id and a name")
		}
		categories = append(categories, &entity.Category{
			ID:       seed.ID,
			Name:     seed.Name,
			Color:    seed.Color,
			PhotoRef: seed.PhotoRef,
		})
	}

	products := make([]*entity.Product, 0, len(srv.seed.Products))
	for _, seed := range srv.seed.Products {
		product, err := seedProductEntity(seed)
		if err != nil {
			return err
		}
		products = append(products, product)
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		productRepo := repoFactory.ProductRepo()

		for _, category := range categories {
			inserted, err := categoryRepo.SeedIfAbsent(ctx, category)
			if err != nil {
				return errors.Wrapf(err, "failed to seed category %d", category.ID)
			}
			if inserted {
				report.CategoriesCreated++
			}
		}

		for _, product := range products {
			inserted, err := productRepo.SeedIfAbsent(ctx, product)
			if err != nil {
				return errors.Wrapf(err, "failed to seed product %d", product.ID)
			}
			if inserted {
				report.ProductsCreated++
			}
		}

		if err := categoryRepo.SyncIDSequence(ctx); err != nil {
			return errors.Wrap(err, "failed to sync category ids")
		}

		return errors.Wrap(productRepo.SyncIDSequence(ctx), "failed to sync product ids")
	})
}

func seedProductEntity(seed config.SeedProduct) (*entity.Product, error) {
	if seed.ID <= 0 || strings.TrimSpace(seed.Name) == "" {
		return nil, domainerrors.ErrInvalidValue.WithDetails("seed products need an id and a name")
	}

	cost, err := parseSeedMoney(seed.CostValue)
	if err != nil {
		return nil, err
	}
	sale, err := parseSeedMoney(seed.SaleValue)
	if err != nil {
		return nil, err
	}
	if seed.Quantity < 0 || cost.IsNegative() || sale.IsNegative() {
		return nil, domainerrors.ErrInvalidValue.WithDetails("seed product values must not be negative")
	}

	return &entity.Product{
		ID:          seed.ID,
		CategoryID:  seed.CategoryID,
		Name:        seed.Name,
		Description: seed.Description,
		Quantity:    seed.Quantity,
		CostValue:   cost,
		SaleValue:   sale,
		Featured:    seed.Featured,
		PhotoRef:    seed.PhotoRef,
	}, nil
}

func parseSeedMoney(value string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, domainerrors.ErrInvalidValue.WithDetails("invalid seed amount " + value)
	}

	return amount, nil
}
