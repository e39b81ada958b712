// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	BirthDate *time.Time
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput carries the current password for re-verification and its replacement.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// UserSummary is the profile view of a user. It never carries the password hash.
type UserSummary struct {
	ID             uuid.UUID
	Email          string
	Name           string
	BirthDate      *time.Time
	PhotoRef       string
	EmailConfirmed bool
	LockedOut      bool
	Roles          entity.Roles
}

// AuthOutput returns the issued access token with the signed-in user's profile.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *UserSummary
}

// AuthUsecase defines registration, sign-in and account maintenance.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*UserSummary, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	// SetLockout locks the account indefinitely or lifts any lock and clears failed attempts.
	SetLockout(ctx context.Context, userID uuid.UUID, locked bool) (*UserSummary, error)
}

// NewUserSummary projects a user entity into its public summary.
func NewUserSummary(user *entity.User, now time.Time) *UserSummary {
	if user == nil {
		return nil
	}

	return &UserSummary{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		BirthDate:      user.BirthDate,
		PhotoRef:       user.PhotoRef,
		EmailConfirmed: user.EmailConfirmed,
		LockedOut:      user.IsLockedOut(now),
		Roles:          user.Roles,
	}
}
