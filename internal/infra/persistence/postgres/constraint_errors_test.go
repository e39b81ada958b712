package postgres

import (
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintHelpers_MatchPgCodes(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")
	foreignKey := errors.Wrap(&pgconn.PgError{Code: "23503"}, "delete")
	notNull := &pgconn.PgError{Code: "23502"}
	check := &pgconn.PgError{Code: "23514"}
	tooLong := &pgconn.PgError{Code: "22001"}
	other := errors.New("connection reset by peer")

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.False(t, isUniqueConstraintViolation(foreignKey))

	assert.True(t, isForeignKeyConstraintViolation(foreignKey))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isValueTooLong(tooLong))
	assert.False(t, isValueTooLong(check))

	for _, fn := range []func(error) bool{
		isUniqueConstraintViolation,
		isForeignKeyConstraintViolation,
		isNotNullConstraintViolation,
		isCheckConstraintViolation,
		isValueTooLong,
	} {
		assert.False(t, fn(other))
	}
}

func TestConstraintHelpers_MatchTranslatedGormErrors(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
}

func TestWriteErrors_OversizedValueIsInvalidValue(t *testing.T) {
	tooLong := errors.Wrap(&pgconn.PgError{Code: "22001", Message: "value too long for type character varying(100)"}, "insert")

	for name, mapped := range map[string]error{
		"category": categoryWriteError(tooLong, "failed to create category"),
		"product":  productWriteError(tooLong, "failed to create product"),
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.Is(mapped, domainerrors.ErrInvalidValue), "got %v", mapped)
			assert.False(t, domainerrors.IsRetryable(mapped))

			var appErr domainerrors.AppError
			if assert.True(t, errors.As(mapped, &appErr)) {
				assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
			}
		})
	}
}

func TestWriteErrors_DriverFailureStaysRetryable(t *testing.T) {
	broken := errors.New("connection reset by peer")

	assert.True(t, domainerrors.IsRetryable(categoryWriteError(broken, "failed to create category")))
	assert.True(t, domainerrors.IsRetryable(productWriteError(broken, "failed to create product")))
}
