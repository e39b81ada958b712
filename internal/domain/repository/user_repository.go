// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store. Lookups by email use the normalized form.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByNormalizedEmail retrieves a user by the output of entity.NormalizeEmail.
	FindByNormalizedEmail(ctx context.Context, normalizedEmail string) (*entity.User, error)

	// Create persists a new user. A taken normalized email yields ErrDuplicateIdentifier.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateSignInState persists only the lockout bookkeeping of the user.
	UpdateSignInState(ctx context.Context, user *entity.User) error

	// Count returns the number of stored users.
	Count(ctx context.Context) (int64, error)
}
