package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesKind(t *testing.T) {
	err := ErrInvalidValue.WithDetails("name is required")

	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "name is required", err.Details())
	assert.Equal(t, "Input validation failed: name is required", err.Error())
	assert.Empty(t, ErrInvalidValue.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrConflict.WrapMessage("category has products")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "CONFLICT", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrConflict))
}

func TestIsRetryable_OnlyStoreUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "store unavailable", err: ErrStoreUnavailable, want: true},
		{name: "wrapped store unavailable", err: errors.Wrap(ErrStoreUnavailable, "tx"), want: true},
		{name: "database execute", err: NewDatabaseExecuteError(errors.New("conn reset"), "find user"), want: true},
		{name: "not found", err: ErrNotFound, want: false},
		{name: "invalid credentials", err: ErrInvalidCredentials, want: false},
		{name: "plain", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestDatabaseExecuteError_ReportsStoreUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "create category")

	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, "STORE_UNAVAILABLE", err.ErrorCode())
	assert.Equal(t, "create category", err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}
