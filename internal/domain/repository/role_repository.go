package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoleNotFound is returned when a role row does not exist.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository manages role rows and user-role assignments.
type RoleRepository interface {
	// FindByName retrieves a role by its name, matched on the normalized form.
	FindByName(ctx context.Context, role entity.Role) (*entity.RoleRecord, error)

	// EnsureRole inserts the role if absent and returns the stored row.
	EnsureRole(ctx context.Context, role entity.Role) (*entity.RoleRecord, error)

	// AssignRole links the user to the role. Assigning twice is a no-op.
	AssignRole(ctx context.Context, userID uuid.UUID, role entity.Role) error

	// ListByUserID returns the role names held by the user.
	ListByUserID(ctx context.Context, userID uuid.UUID) (entity.Roles, error)

	// Count returns the number of stored roles.
	Count(ctx context.Context) (int64, error)
}
