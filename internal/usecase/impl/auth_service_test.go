package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      *authService
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	roleRepo     *mockRepo.MockRoleRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	now          time.Time
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		RoleRepo:     roleRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config: &config.Config{Auth: &config.AuthConfig{
			MaxFailedAttempts: 3,
			LockoutDuration:   10 * time.Minute,
		}},
		Logger: newDiscardLogger(),
	})

	impl, ok := srv.(*authService)
	require.True(t, ok)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	impl.now = func() time.Time { return now }

	return authServiceFixtures{
		service:      impl,
		txManager:    txManager,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		hasher:       hasher,
		tokenService: tokenService,
		now:          now,
	}
}

// expectTx runs the transaction body against factory and returns its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{Email: " a@x.com ", Password: "secret1", Name: "Ann"}

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txRoleRepo := mockRepo.NewMockRoleRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().RoleRepo().Return(txRoleRepo)
	expectTx(fx.txManager, factory)

	userID := uuid.New()
	txUserRepo.EXPECT().FindByNormalizedEmail(ctx, "A@X.COM").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "a@x.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.True(t, user.LockoutEnabled)
			user.ID = userID
		}).
		Return(nil)
	txRoleRepo.EXPECT().AssignRole(ctx, userID, entity.RoleCustomer).Return(nil)

	expiresAt := fx.now.Add(time.Hour)
	fx.tokenService.EXPECT().
		Issue(userID, "a@x.com", entity.Roles{entity.RoleCustomer}).
		Return("token", expiresAt, nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "Ann", output.User.Name)
	assert.Equal(t, entity.Roles{entity.RoleCustomer}, output.User.Roles)
}

func TestAuthService_Register_RejectsInvalidInputBeforeStoreAccess(t *testing.T) {
	testCases := []struct {
		name    string
		input   *usecase.RegisterInput
		wantErr error
	}{
		{name: "missing email", input: &usecase.RegisterInput{Password: "secret1"}, wantErr: domainerrors.ErrInvalidValue},
		{name: "malformed email", input: &usecase.RegisterInput{Email: "not-an-email", Password: "secret1"}, wantErr: domainerrors.ErrInvalidValue},
		{
			name:    "email longer than the column",
			input:   &usecase.RegisterInput{Email: strings.Repeat("a", 250) + "@x.com", Password: "secret1"},
			wantErr: domainerrors.ErrInvalidValue,
		},
		{
			name:    "name too long",
			input:   &usecase.RegisterInput{Email: "a@x.com", Password: "secret1", Name: string(make([]rune, 101))},
			wantErr: domainerrors.ErrInvalidValue,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			output, err := fx.service.Register(context.Background(), tc.input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().
		ValidatePasswordStrength("abc").
		Return(domainerrors.ErrWeakCredential.WithDetails("password must be at least 6 characters"))

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "a@x.com", Password: "abc"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrWeakCredential))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTx(fx.txManager, factory)

	txUserRepo.EXPECT().FindByNormalizedEmail(ctx, "A@X.COM").Return(&entity.User{ID: uuid.New()}, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "A@x.com", Password: "secret1"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentifier))
}

func TestAuthService_Register_LogsNoEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	var logs bytes.Buffer
	fx.service.logger = slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTx(fx.txManager, factory)

	txUserRepo.EXPECT().FindByNormalizedEmail(ctx, "ANN@SHOP.TEST").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ann@shop.test", Password: "secret1"})
	require.Error(t, err)

	assert.Contains(t, logs.String(), "Registration failed")
	assert.NotContains(t, strings.ToLower(logs.String()), "ann@shop.test")
}

func TestAuthService_Register_LostInsertRaceIsDuplicate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTx(fx.txManager, factory)

	txUserRepo.EXPECT().FindByNormalizedEmail(ctx, "A@X.COM").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrDuplicateIdentifier.WrapMessage("email already exists"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "secret1"})

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateIdentifier))
}

func TestAuthService_Register_MissingCustomerRole(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txRoleRepo := mockRepo.NewMockRoleRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().RoleRepo().Return(txRoleRepo)
	expectTx(fx.txManager, factory)

	txUserRepo.EXPECT().FindByNormalizedEmail(ctx, "A@X.COM").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	txRoleRepo.EXPECT().
		AssignRole(ctx, mock.Anything, entity.RoleCustomer).
		Return(errors.Wrap(repository.ErrRoleNotFound, "find role"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "secret1"})

	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordFailIdentically(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hashed", LockoutEnabled: true}

	fx.userRepo.EXPECT().FindByNormalizedEmail(ctx, "NOBODY@X.COM").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
	fx.hasher.EXPECT().Check("secret1", "dummy-hash").Return(false)

	fx.userRepo.EXPECT().FindByNormalizedEmail(ctx, "A@X.COM").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)
	fx.userRepo.EXPECT().UpdateSignInState(ctx, user).Return(nil)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@x.com", Password: "secret1"})
	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})

	require.Error(t, unknownErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, unknownErr, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, 1, user.AccessFailedCount)
}

func TestAuthService_Login_LocksAfterRepeatedFailures(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hashed", LockoutEnabled: true, AccessFailedCount: 2}

	fx.userRepo.EXPECT().FindByNormalizedEmail(ctx, "A@X.COM").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)
	fx.userRepo.EXPECT().UpdateSignInState(ctx, user).Return(nil).Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	require.NotNil(t, user.LockoutEnd)
	assert.Equal(t, fx.now.Add(10*time.Minute), *user.LockoutEnd)
	assert.Zero(t, user.AccessFailedCount)
}

func TestAuthService_Login_LockedAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	lockoutEnd := fx.now.Add(5 * time.Minute)
	user := &entity.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hashed", LockoutEnabled: true, LockoutEnd: &lockoutEnd}

	fx.userRepo.EXPECT().FindByNormalizedEmail(ctx, "A@X.COM").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true).Once()
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false).Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret1"})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountLocked))

	// Without the password the lock is not revealed, and the lock is not extended.
	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, lockoutEnd, *user.LockoutEnd)
}

func TestAuthService_Login_SuccessResetsFailures(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	expired := fx.now.Add(-time.Minute)
	user := &entity.User{
		ID:                uuid.New(),
		Email:             "a@x.com",
		PasswordHash:      "hashed",
		LockoutEnabled:    true,
		LockoutEnd:        &expired,
		AccessFailedCount: 2,
	}
	roles := entity.Roles{entity.RoleAdministrator}

	fx.userRepo.EXPECT().FindByNormalizedEmail(ctx, "A@X.COM").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.userRepo.EXPECT().UpdateSignInState(ctx, user).Return(nil)
	fx.roleRepo.EXPECT().ListByUserID(ctx, user.ID).Return(roles, nil)
	fx.tokenService.EXPECT().Issue(user.ID, "a@x.com", roles).Return("token", fx.now.Add(time.Hour), nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "A@X.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "token", output.Token)
	assert.Equal(t, roles, output.User.Roles)
	assert.Zero(t, user.AccessFailedCount)
	assert.Nil(t, user.LockoutEnd)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: " ", Password: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@x.com"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_StoreFailureIsNotInvalidCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find user")
	fx.userRepo.EXPECT().FindByNormalizedEmail(ctx, "A@X.COM").Return(nil, storeErr)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret1"})

	assert.True(t, domainerrors.IsRetryable(err))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_GetUserByID(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	birthDate := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:           userID,
		Email:        "a@x.com",
		Name:         "Ann",
		BirthDate:    &birthDate,
		PasswordHash: "hashed",
	}, nil)
	fx.roleRepo.EXPECT().ListByUserID(ctx, userID).Return(entity.Roles{entity.RoleCustomer}, nil)

	summary, err := fx.service.GetUserByID(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Ann", summary.Name)
	assert.Equal(t, &birthDate, summary.BirthDate)
	assert.Equal(t, entity.Roles{entity.RoleCustomer}, summary.Roles)
	assert.False(t, summary.LockedOut)
}

func TestAuthService_GetUserByID_NotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	summary, err := fx.service.GetUserByID(ctx, userID)

	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAuthService_ChangePassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "old-hash"}
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "old-hash").Return(true)
	fx.hasher.EXPECT().ValidatePasswordStrength("secret2").Return(nil)
	fx.hasher.EXPECT().Hash("secret2").Return("new-hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.PasswordHash == "new-hash" })).
		Return(nil)

	err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "secret2"})

	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "old-hash"}
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "old-hash").Return(false)

	err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{CurrentPassword: "wrong", NewPassword: "secret2"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_SetLockout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "a@x.com", AccessFailedCount: 2}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txRoleRepo := mockRepo.NewMockRoleRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().RoleRepo().Return(txRoleRepo)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Twice()

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	txUserRepo.EXPECT().Update(ctx, user).Return(nil)
	txRoleRepo.EXPECT().ListByUserID(ctx, userID).Return(entity.Roles{entity.RoleCustomer}, nil)

	summary, err := fx.service.SetLockout(ctx, userID, true)
	require.NoError(t, err)
	assert.True(t, summary.LockedOut)
	assert.True(t, user.LockoutEnabled)
	assert.Zero(t, user.AccessFailedCount)

	summary, err = fx.service.SetLockout(ctx, userID, false)
	require.NoError(t, err)
	assert.False(t, summary.LockedOut)
	assert.Nil(t, user.LockoutEnd)
}

func TestAuthService_SetLockout_NotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTx(fx.txManager, factory)
	txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	summary, err := fx.service.SetLockout(ctx, userID, true)

	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
