// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultMaxFailedAttempts = 5
	defaultLockoutDuration   = 15 * time.Minute
	maxNameLength            = 100

	// Hashed once and compared against when the email is unknown, so that
	// unknown accounts cost as much as wrong passwords.
	dummyPassword = "storefront-timing-parity"
)

// indefiniteLockout is how far an administrator lock pushes LockoutEnd.
const indefiniteLockout = 100 * 365 * 24 * time.Hour

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	roleRepo          repository.RoleRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	validate          *validator.Validate
	maxFailedAttempts int
	lockoutDuration   time.Duration
	defaultPhotoRef   string
	now               func() time.Time
	logger            *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	RoleRepo     repository.RoleRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		roleRepo:          params.RoleRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		validate:          validator.New(),
		maxFailedAttempts: defaultMaxFailedAttempts,
		lockoutDuration:   defaultLockoutDuration,
		now:               time.Now,
		logger:            params.Logger,
	}

	if params.Config != nil && params.Config.Auth != nil {
		authCfg := params.Config.Auth
		// Zero disables lockout; only negative values are treated as unset.
		if authCfg.MaxFailedAttempts >= 0 {
			srv.maxFailedAttempts = authCfg.MaxFailedAttempts
		}
		if authCfg.LockoutDuration > 0 {
			srv.lockoutDuration = authCfg.LockoutDuration
		}
		srv.defaultPhotoRef = authCfg.DefaultPhotoRef
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a Customer account and signs it in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)

	if err := srv.validate.Var(email, "required,email,max=256"); err != nil {
		return nil, domainerrors.ErrInvalidValue.WithDetails("email must be a valid email address")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, domainerrors.ErrInvalidValue.WithDetails("name must be at most 100 characters")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	// Hashing is slow, keep it outside the transaction.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:           email,
		NormalizedEmail: entity.NormalizeEmail(email),
		PasswordHash:    hash,
		Name:            name,
		BirthDate:       input.BirthDate,
		PhotoRef:        srv.defaultPhotoRef,
		LockoutEnabled:  true,
		Roles:           entity.Roles{entity.RoleCustomer},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByNormalizedEmail(ctx, user.NormalizedEmail)
		if err == nil {
			return domainerrors.ErrDuplicateIdentifier
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up email")
		}

		// A concurrent registration that wins the race surfaces here as a unique violation.
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		if err := repoFactory.RoleRepo().AssignRole(ctx, user.ID, entity.RoleCustomer); err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return domainerrors.ErrInternalError.WrapMessage("customer role is missing, seed the roles first")
			}

			return errors.Wrap(err, "failed to assign customer role")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))

	return srv.signIn(user)
}

// Login verifies the credentials and issues a token. Unknown emails and wrong
// passwords fail identically.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	normalized := entity.NormalizeEmail(input.Email)
	if normalized == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByNormalizedEmail(ctx, normalized)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.hasher.Check(input.Password, srv.timingParityHash())

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user")
	}

	now := srv.now()

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.recordFailedAttempt(ctx, user, now)

		return nil, domainerrors.ErrInvalidCredentials
	}

	// Only callers holding the password learn about the lock.
	if user.IsLockedOut(now) {
		srv.log(ctx).Info("Sign-in refused for locked account", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrAccountLocked
	}

	if user.ResetFailedAttempts() {
		if err := srv.userRepo.UpdateSignInState(ctx, user); err != nil {
			srv.log(ctx).Warn("Failed to reset sign-in state", slog.String("userID", user.ID.String()), slog.Any("error", err))
		}
	}

	roles, err := srv.roleRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roles")
	}
	user.Roles = roles

	return srv.signIn(user)
}

func (srv *authService) recordFailedAttempt(ctx context.Context, user *entity.User, now time.Time) {
	// Attempts made while locked do not extend the lock.
	if user.IsLockedOut(now) {
		return
	}

	if user.RecordFailedAttempt(now, srv.maxFailedAttempts, srv.lockoutDuration) {
		srv.log(ctx).Warn("Account locked after repeated failed sign-ins", slog.String("userID", user.ID.String()))
	}

	if err := srv.userRepo.UpdateSignInState(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to record failed sign-in", slog.String("userID", user.ID.String()), slog.Any("error", err))
	}
}

func (srv *authService) timingParityHash() string {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err == nil {
			srv.dummyHash = hash
		}
	})

	return srv.dummyHash
}

func (srv *authService) signIn(user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.Issue(user.ID, user.Email, user.Roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      usecase.NewUserSummary(user, srv.now()),
	}, nil
}

// GetUserByID returns the profile summary of the user.
func (srv *authService) GetUserByID(ctx context.Context, userID uuid.UUID) (*usecase.UserSummary, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return usecase.NewUserSummary(user, srv.now()), nil
}

// ChangePassword replaces the password after re-verifying the current one.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrNotFound.WithDetails("user not found")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.String("userID", userID.String()))

	return nil
}

// SetLockout locks the account indefinitely or lifts the lock.
func (srv *authService) SetLockout(ctx context.Context, userID uuid.UUID, locked bool) (*usecase.UserSummary, error) {
	var summary *usecase.UserSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound.WithDetails("user not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		now := srv.now()
		if locked {
			end := now.Add(indefiniteLockout)
			user.LockoutEnabled = true
			user.LockoutEnd = &end
			user.AccessFailedCount = 0
		} else {
			user.ResetFailedAttempts()
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update lockout")
		}

		roles, err := repoFactory.RoleRepo().ListByUserID(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load roles")
		}
		user.Roles = roles
		summary = usecase.NewUserSummary(user, now)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Lockout changed", slog.String("userID", userID.String()), slog.Bool("locked", locked))

	return summary, nil
}

func (srv *authService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	roles, err := srv.roleRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roles")
	}
	user.Roles = roles

	return user, nil
}
