package entity

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated identity extracted from a validated access token.
// Roles reflect the state at issuance; changes apply from the next token.
type Principal struct {
	UserID    uuid.UUID
	Email     string
	Roles     Roles
	ExpiresAt time.Time
}

// HasRole reports whether the principal holds role.
func (p *Principal) HasRole(role Role) bool {
	return p != nil && p.Roles.Contains(role)
}
