package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and validates self-contained access tokens.
type TokenService interface {
	// Issue signs a token for the user that expires after the configured TTL.
	Issue(userID uuid.UUID, email string, roles entity.Roles) (token string, expiresAt time.Time, err error)

	// Validate verifies signature and expiry and returns the embedded principal.
	Validate(token string) (*entity.Principal, error)
}
