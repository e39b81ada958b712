package usecase

import "storefront/internal/domain/entity"

// AuthorizationGate decides whether a principal may perform a protected operation.
// A denial never says which check failed.
type AuthorizationGate interface {
	Authorize(principal *entity.Principal, required entity.Role) error
}
