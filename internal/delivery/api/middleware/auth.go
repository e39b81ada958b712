package middleware

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	principalKey = "principal"
	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Gate         usecase.AuthorizationGate
}

// AuthMiddleware authenticates bearer tokens and guards role-restricted routes.
type AuthMiddleware struct {
	tokenService service.TokenService
	gate         usecase.AuthorizationGate
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
		gate:         params.Gate,
	}
}

// Authenticate validates the access token and stores its principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return response.AppError(c, domainerrors.ErrUnauthorized)
		}

		principal, err := m.tokenService.Validate(strings.TrimSpace(token))
		if err != nil {
			return response.AppError(c, domainerrors.ErrUnauthorized)
		}

		SetPrincipal(c, principal)
		deliverycontext.AddLogAttrs(c, slog.String("user_id", principal.UserID.String()))

		return next(c)
	}
}

// RequireRole lets the request through only when the principal holds role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := GetPrincipal(c)
			if err := m.gate.Authorize(principal, role); err != nil {
				return response.AppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// SetPrincipal stores the authenticated principal for later handlers.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(principalKey, principal)
}

// GetPrincipal returns the principal stored by Authenticate.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(principalKey).(*entity.Principal)

	return principal, ok && principal != nil
}
