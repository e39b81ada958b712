package impl

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

type authorizationGate struct{}

// NewAuthorizationGate returns the role check applied before protected operations.
func NewAuthorizationGate() usecase.AuthorizationGate {
	return authorizationGate{}
}

// Authorize fails with the same Forbidden error for a missing principal and a missing role.
func (authorizationGate) Authorize(principal *entity.Principal, required entity.Role) error {
	if !required.IsValid() || !principal.HasRole(required) {
		return domainerrors.ErrForbidden
	}

	return nil
}
