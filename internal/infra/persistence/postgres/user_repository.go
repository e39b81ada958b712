// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByNormalizedEmail retrieves a user by normalized email.
// Credential checks always read from the primary so a fresh registration is visible at once.
func (repo *userRepository) FindByNormalizedEmail(ctx context.Context, normalizedEmail string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("normalized_email = ?", normalizedEmail).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. The ID is generated here when the caller leaves it empty.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}
	if user.NormalizedEmail == "" {
		user.NormalizedEmail = entity.NormalizeEmail(user.Email)
	}

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateIdentifier.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidValue.WithDetails("missing required user information")
		}
		if isValueTooLong(err) {
			return domainerrors.ErrInvalidValue.WithDetails("user information is too long")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the profile and credential columns of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":               user.Email,
			"normalized_email":    entity.NormalizeEmail(user.Email),
			"password_hash":       user.PasswordHash,
			"name":                user.Name,
			"birth_date":          user.BirthDate,
			"photo_ref":           user.PhotoRef,
			"email_confirmed":     user.EmailConfirmed,
			"lockout_enabled":     user.LockoutEnabled,
			"lockout_end":         user.LockoutEnd,
			"access_failed_count": user.AccessFailedCount,
			"updated_at":          now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateIdentifier.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.NormalizedEmail = entity.NormalizeEmail(user.Email)
	user.UpdatedAt = now

	return nil
}

// UpdateSignInState persists the failure counter and lockout end only.
func (repo *userRepository) UpdateSignInState(ctx context.Context, user *entity.User) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"lockout_end":         user.LockoutEnd,
			"access_failed_count": user.AccessFailedCount,
			"updated_at":          now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update sign-in state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = now

	return nil
}

// Count returns the number of stored users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}

	return count, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                data.ID,
		Email:             data.Email,
		NormalizedEmail:   data.NormalizedEmail,
		PasswordHash:      data.PasswordHash,
		Name:              data.Name,
		BirthDate:         data.BirthDate,
		PhotoRef:          data.PhotoRef,
		EmailConfirmed:    data.EmailConfirmed,
		LockoutEnabled:    data.LockoutEnabled,
		LockoutEnd:        data.LockoutEnd,
		AccessFailedCount: data.AccessFailedCount,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                data.ID,
		Email:             data.Email,
		NormalizedEmail:   data.NormalizedEmail,
		PasswordHash:      data.PasswordHash,
		Name:              data.Name,
		BirthDate:         data.BirthDate,
		PhotoRef:          data.PhotoRef,
		EmailConfirmed:    data.EmailConfirmed,
		LockoutEnabled:    data.LockoutEnabled,
		LockoutEnd:        data.LockoutEnd,
		AccessFailedCount: data.AccessFailedCount,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
