package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminUserHandlerParams holds dependencies for AdminUserHandler, injected by Fx.
type AdminUserHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AdminUserHandler lets administrators inspect and lock accounts.
type AdminUserHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAdminUserHandler is the constructor for AdminUserHandler
func NewAdminUserHandler(params AdminUserHandlerParams) *AdminUserHandler {
	return &AdminUserHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LockoutRequest represents the request body for locking or unlocking an account
type LockoutRequest struct {
	Locked *bool `json:"locked" validate:"required"`
}

// GetUser returns any user's summary
func (h *AdminUserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidValue.WithDetails("invalid user id")
	}

	summary, err := h.authUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(summary))
}

// SetLockout locks or unlocks an account
func (h *AdminUserHandler) SetLockout(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidValue.WithDetails("invalid user id")
	}

	var req LockoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lockout input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.authUC.SetLockout(c.Request().Context(), userID, *req.Locked)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Account lockout changed",
		slog.String("userID", userID.String()),
		slog.Bool("locked", *req.Locked))

	return response.Success(c, http.StatusOK, newUserView(summary))
}
