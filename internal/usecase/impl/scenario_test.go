package impl

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/auth"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// storefront wires the real hasher and token service to the in-memory store.
type storefront struct {
	store     *memStore
	images    *memImages
	publisher *recordingPublisher
	tokens    service.TokenService
	auth      usecase.AuthUsecase
	catalog   usecase.CatalogUsecase
	seed      usecase.SeedUsecase
	cfg       *config.Config
}

func newStorefront(t *testing.T) *storefront {
	t.Helper()

	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost, AccessTokenTTL: time.Hour, MaxFailedAttempts: 5},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 6},
		Seed: &config.SeedConfig{
			Enabled: true,
			Admin:   config.SeedAdminConfig{Email: "admin@storefront.local", Name: "Admin", Password: "admin-secret"},
			Categories: []config.SeedCategory{
				{ID: 1, Name: "Specialty Coffee", Color: "#6F4E37"},
				{ID: 2, Name: "Capsules", Color: "#A0522D"},
			},
			Products: []config.SeedProduct{
				{ID: 1, CategoryID: 1, Name: "Arabica Beans", Quantity: 50, CostValue: "30.00", SaleValue: "45.90", Featured: true},
				{ID: 2, CategoryID: 2, Name: "Ground Coffee", Quantity: 100, CostValue: "20.00", SaleValue: "29.90"},
			},
		},
	}
	cfg.SecretKey.Access = "scenario-secret"
	cfg.Env.ServiceName = "storefront-test"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)

	sf := &storefront{
		store:     newMemStore(),
		images:    newMemImages(),
		publisher: &recordingPublisher{},
		tokens:    tokens,
		cfg:       cfg,
	}

	sf.auth = NewAuthService(AuthServiceParams{
		TxManager:    sf.store,
		UserRepo:     sf.store.UserRepo(),
		RoleRepo:     sf.store.RoleRepo(),
		Hasher:       hasher,
		TokenService: tokens,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})
	sf.catalog = NewCatalogService(CatalogServiceParams{
		TxManager:    sf.store,
		CategoryRepo: sf.store.CategoryRepo(),
		ProductRepo:  sf.store.ProductRepo(),
		ImageStore:   sf.images,
		Cache:        nopCatalogCache{},
		Publisher:    sf.publisher,
		Logger:       newDiscardLogger(),
	})
	sf.seed = NewSeedService(SeedServiceParams{
		TxManager: sf.store,
		UserRepo:  sf.store.UserRepo(),
		RoleRepo:  sf.store.RoleRepo(),
		Hasher:    hasher,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	_, err = sf.seed.Apply(context.Background())
	require.NoError(t, err)

	return sf
}

func TestScenario_RegisterThenLogin(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	registered, err := sf.auth.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleCustomer}, registered.User.Roles)

	_, err = sf.auth.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	loggedIn, err := sf.auth.Login(ctx, &usecase.LoginInput{Email: "A@X.COM", Password: "secret1"})
	require.NoError(t, err)

	principal, err := sf.tokens.Validate(loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, principal.UserID)
	assert.Equal(t, entity.Roles{entity.RoleCustomer}, principal.Roles)

	// The failed attempt was cleared by the successful sign-in.
	stored := sf.store.users[registered.User.ID]
	assert.Zero(t, stored.AccessFailedCount)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
}

func TestScenario_DuplicateRegistrationKeepsOneUser(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	usersBefore := len(sf.store.users)

	_, err := sf.auth.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = sf.auth.Register(ctx, &usecase.RegisterInput{Email: "A@x.com ", Password: "another1"})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentifier))
	assert.Len(t, sf.store.users, usersBefore+1)
}

func TestScenario_UnknownAndWrongPasswordAreIndistinguishable(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	_, err := sf.auth.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, unknownErr := sf.auth.Login(ctx, &usecase.LoginInput{Email: "b@x.com", Password: "secret1"})
	_, wrongErr := sf.auth.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret2"})

	assert.Equal(t, unknownErr, wrongErr)
}

func TestScenario_SeededAdministratorCanSignIn(t *testing.T) {
	sf := newStorefront(t)

	output, err := sf.auth.Login(context.Background(), &usecase.LoginInput{Email: "admin@storefront.local", Password: "admin-secret"})
	require.NoError(t, err)

	principal, err := sf.tokens.Validate(output.Token)
	require.NoError(t, err)
	assert.NoError(t, NewAuthorizationGate().Authorize(principal, entity.RoleAdministrator))
}

func TestScenario_SeedIsIdempotent(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	counts := func() [4]int {
		return [4]int{len(sf.store.users), len(sf.store.roles), len(sf.store.categories), len(sf.store.products)}
	}
	once := counts()

	report, err := sf.seed.Apply(ctx)
	require.NoError(t, err)

	assert.Equal(t, once, counts())
	assert.Equal(t, usecase.SeedReport{}, *report)
	assert.Equal(t, [4]int{1, 2, 2, 2}, once)
}

func TestScenario_DeleteCategoryRespectsProducts(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	_, err := sf.catalog.DeleteCategory(ctx, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	assert.Contains(t, sf.store.categories, int64(1))
	assert.Contains(t, sf.store.products, int64(1))

	created, err := sf.catalog.CreateCategory(ctx, &usecase.CategoryInput{Name: "Empty"}, nil)
	require.NoError(t, err)
	// Seeded IDs were skipped by the sequence sync.
	assert.Equal(t, int64(3), created.Entity.ID)

	_, err = sf.catalog.DeleteCategory(ctx, created.Entity.ID)
	require.NoError(t, err)
	assert.NotContains(t, sf.store.categories, created.Entity.ID)
}

func TestScenario_ProductWithMissingCategory(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	productsBefore := len(sf.store.products)

	_, err := sf.catalog.CreateProduct(ctx, &usecase.ProductInput{
		CategoryID: 99,
		Name:       "Orphan",
		CostValue:  decimal.NewFromInt(1),
		SaleValue:  decimal.NewFromInt(2),
	}, &entity.ImageUpload{Data: []byte("png")})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
	assert.Len(t, sf.store.products, productsBefore)
	assert.Empty(t, sf.images.objects, "no image may be written for a rejected product")
}

func TestScenario_ReplaceCategoryImage(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	created, err := sf.catalog.CreateCategory(ctx, &usecase.CategoryInput{Name: "Mugs"}, &entity.ImageUpload{Data: []byte("first")})
	require.NoError(t, err)
	oldRef := created.Entity.PhotoRef
	require.NotEmpty(t, oldRef)

	updated, err := sf.catalog.UpdateCategory(ctx, created.Entity.ID, &usecase.CategoryInput{Name: "Mugs"}, &entity.ImageUpload{Data: []byte("second")})
	require.NoError(t, err)
	assert.Empty(t, updated.Warnings)

	newRef := updated.Entity.PhotoRef
	assert.NotEqual(t, oldRef, newRef)
	assert.Equal(t, newRef, sf.store.categories[created.Entity.ID].PhotoRef)
	assert.Equal(t, []byte("second"), sf.images.objects[newRef])
	assert.NotContains(t, sf.images.objects, oldRef)

	// A failed image write leaves the stored reference and its image in place.
	sf.images.putErr = domainerrors.ErrStoreUnavailable
	_, err = sf.catalog.UpdateCategory(ctx, created.Entity.ID, &usecase.CategoryInput{Name: "Renamed"}, &entity.ImageUpload{Data: []byte("third")})
	require.Error(t, err)
	assert.True(t, domainerrors.IsRetryable(err))

	stored := sf.store.categories[created.Entity.ID]
	assert.Equal(t, newRef, stored.PhotoRef)
	assert.Equal(t, "Mugs", stored.Name)
	assert.Contains(t, sf.images.objects, newRef)
}

func TestScenario_PurgeFailureIsAWarning(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	created, err := sf.catalog.CreateProduct(ctx, &usecase.ProductInput{
		CategoryID: 1,
		Name:       "Grinder",
		Quantity:   3,
		CostValue:  decimal.RequireFromString("50.00"),
		SaleValue:  decimal.RequireFromString("79.90"),
	}, &entity.ImageUpload{Data: []byte("grinder")})
	require.NoError(t, err)

	sf.images.deleteErr = errors.New("bucket unreachable")

	deleted, err := sf.catalog.DeleteProduct(ctx, created.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{warnImagePurgeFailed}, deleted.Warnings)
	assert.NotContains(t, sf.store.products, created.Entity.ID)

	require.Len(t, sf.publisher.events, 2)
	assert.Equal(t, service.CatalogEventProductDeleted, sf.publisher.events[1].Type)
	assert.Len(t, sf.images.refsWithPrefix(string(entity.ImageKindProduct)+"/"), 1, "stale image lingers")
}
