package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedServiceFixtures struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	roleRepo  *mockRepo.MockRoleRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestSeedService(t *testing.T, seed *config.SeedConfig) (seedServiceFixtures, *seedService) {
	fx := seedServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		roleRepo:  mockRepo.NewMockRoleRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
	}

	srv := NewSeedService(SeedServiceParams{
		TxManager: fx.txManager,
		UserRepo:  fx.userRepo,
		RoleRepo:  fx.roleRepo,
		Hasher:    fx.hasher,
		Config:    &config.Config{Seed: seed},
		Logger:    newDiscardLogger(),
	})

	impl, ok := srv.(*seedService)
	require.True(t, ok)

	return fx, impl
}

func (fx seedServiceFixtures) expectRoles(before, after int64) {
	fx.roleRepo.EXPECT().Count(mock.Anything).Return(before, nil).Once()
	fx.roleRepo.EXPECT().EnsureRole(mock.Anything, entity.RoleAdministrator).Return(&entity.RoleRecord{Name: entity.RoleAdministrator}, nil)
	fx.roleRepo.EXPECT().EnsureRole(mock.Anything, entity.RoleCustomer).Return(&entity.RoleRecord{Name: entity.RoleCustomer}, nil)
	fx.roleRepo.EXPECT().Count(mock.Anything).Return(after, nil).Once()
}

func TestSeedService_Disabled(t *testing.T) {
	_, srv := createTestSeedService(t, &config.SeedConfig{Enabled: false})

	report, err := srv.Apply(context.Background())

	require.NoError(t, err)
	assert.Zero(t, *report)
}

func TestSeedService_SkipsAdministratorWithoutPassword(t *testing.T) {
	fx, srv := createTestSeedService(t, &config.SeedConfig{
		Enabled: true,
		Admin:   config.SeedAdminConfig{Email: "admin@storefront.local"},
	})
	ctx := context.Background()

	fx.expectRoles(0, 2)
	fx.userRepo.EXPECT().FindByNormalizedEmail(ctx, "ADMIN@STOREFRONT.LOCAL").Return(nil, repository.ErrUserNotFound)

	report, err := srv.Apply(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.RolesCreated)
	assert.False(t, report.AdminCreated)
}

func TestSeedService_CreatesAdministrator(t *testing.T) {
	fx, srv := createTestSeedService(t, &config.SeedConfig{
		Enabled: true,
		Admin:   config.SeedAdminConfig{Email: "admin@storefront.local", Name: "Admin", Password: "s3cret-admin"},
	})
	ctx := context.Background()

	fx.expectRoles(2, 2)
	fx.userRepo.EXPECT().FindByNormalizedEmail(ctx, "ADMIN@STOREFRONT.LOCAL").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().ValidatePasswordStrength("s3cret-admin").Return(nil)
	fx.hasher.EXPECT().Hash("s3cret-admin").Return("hashed", nil)

	userID := uuid.New()
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txRoleRepo := mockRepo.NewMockRoleRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().RoleRepo().Return(txRoleRepo)
	expectTx(fx.txManager, factory)
	txUserRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.PasswordHash == "hashed" && user.EmailConfirmed && user.NormalizedEmail == "ADMIN@STOREFRONT.LOCAL"
		})).
		Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
		Return(nil)
	txRoleRepo.EXPECT().AssignRole(ctx, userID, entity.RoleAdministrator).Return(nil)

	report, err := srv.Apply(ctx)

	require.NoError(t, err)
	assert.Zero(t, report.RolesCreated)
	assert.True(t, report.AdminCreated)
}

func TestSeedService_ExistingAdministratorKeepsRole(t *testing.T) {
	fx, srv := createTestSeedService(t, &config.SeedConfig{
		Enabled: true,
		Admin:   config.SeedAdminConfig{Email: "admin@storefront.local", Password: "s3cret-admin"},
	})
	ctx := context.Background()

	existing := &entity.User{ID: uuid.New()}
	fx.expectRoles(2, 2)
	fx.userRepo.EXPECT().FindByNormalizedEmail(ctx, "ADMIN@STOREFRONT.LOCAL").Return(existing, nil)
	fx.roleRepo.EXPECT().AssignRole(ctx, existing.ID, entity.RoleAdministrator).Return(nil)

	report, err := srv.Apply(ctx)

	require.NoError(t, err)
	assert.False(t, report.AdminCreated)
}

func TestSeedService_SeedsCatalogInOneTransaction(t *testing.T) {
	fx, srv := createTestSeedService(t, &config.SeedConfig{
		Enabled:    true,
		Categories: []config.SeedCategory{{ID: 1, Name: "Beans"}, {ID: 2, Name: "Capsules"}},
		Products:   []config.SeedProduct{{ID: 1, CategoryID: 1, Name: "Arabica", Quantity: 5, CostValue: "30.00", SaleValue: "45.90"}},
	})
	ctx := context.Background()

	fx.expectRoles(2, 2)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().CategoryRepo().Return(txCategoryRepo)
	factory.EXPECT().ProductRepo().Return(txProductRepo)
	expectTx(fx.txManager, factory)

	txCategoryRepo.EXPECT().SeedIfAbsent(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.ID == 1 })).Return(false, nil)
	txCategoryRepo.EXPECT().SeedIfAbsent(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.ID == 2 })).Return(true, nil)
	txProductRepo.EXPECT().
		SeedIfAbsent(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.ID == 1 && p.SaleValue.Equal(decimal.RequireFromString("45.9"))
		})).
		Return(true, nil)
	txCategoryRepo.EXPECT().SyncIDSequence(ctx).Return(nil)
	txProductRepo.EXPECT().SyncIDSequence(ctx).Return(nil)

	report, err := srv.Apply(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.CategoriesCreated)
	assert.Equal(t, 1, report.ProductsCreated)
}

func TestSeedService_RejectsMalformedSeedBeforeWriting(t *testing.T) {
	fx, srv := createTestSeedService(t, &config.SeedConfig{
		Enabled:  true,
		Products: []config.SeedProduct{{ID: 1, CategoryID: 1, Name: "Arabica", CostValue: "thirty"}},
	})

	fx.expectRoles(2, 2)

	_, err := srv.Apply(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidValue))
}

func TestSeedProductEntity_RejectsNegativeValues(t *testing.T) {
	_, err := seedProductEntity(config.SeedProduct{ID: 1, Name: "Beans", SaleValue: "-1"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidValue))

	product, err := seedProductEntity(config.SeedProduct{ID: 2, CategoryID: 1, Name: "Beans"})
	require.NoError(t, err)
	assert.True(t, product.CostValue.IsZero())
}
