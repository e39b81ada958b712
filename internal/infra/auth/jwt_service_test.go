package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret
	cfg.Env.ServiceName = "storefront-test"

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	roles := entity.Roles{entity.RoleAdministrator, entity.RoleCustomer}

	token, expiresAt, err := svc.Issue(userID, "a@x.com", roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	principal, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, "a@x.com", principal.Email)
	assert.Equal(t, roles, principal.Roles)
	assert.WithinDuration(t, expiresAt, principal.ExpiresAt, time.Second)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := newTestJWTConfig("secret")
	cfg.Auth = nil

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	assert.Equal(t, defaultAccessTokenTTL, impl.accessTTL)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret-one"))
	require.NoError(t, err)
	other, err := NewJWTService(newTestJWTConfig("secret-two"))
	require.NoError(t, err)

	foreign, _, err := other.Issue(uuid.New(), "a@x.com", entity.Roles{entity.RoleCustomer})
	require.NoError(t, err)

	_, err = svc.Validate(foreign)
	assert.Error(t, err, "token signed with another secret must be rejected")

	_, err = svc.Validate("not-a-token")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := impl.Issue(uuid.New(), "a@x.com", nil)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnexpectedAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"iss": "storefront-test",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsBadSubject(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub": "not-a-uuid",
		"iss": "storefront-test",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}
