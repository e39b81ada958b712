package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=5"`
	Birthday string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signupRequest{Email: "a@x.com", Name: "Ann"}))

	err := v.Validate(&signupRequest{Name: "Too long"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidValue))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "email is required; name must be at most 5", appErr.Details())

	err = v.Validate(&signupRequest{Email: "a@x.com", Birthday: "01/02/2000"})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "birth_date is invalid", appErr.Details())
}
