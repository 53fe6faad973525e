package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsStatus(t *testing.T) {
	tests := []struct {
		err    *appErrors.AppError
		code   string
		status int
	}{
		{appErrors.ValidationError("x"), appErrors.ErrCodeValidation, http.StatusBadRequest},
		{appErrors.NotFoundError("x"), appErrors.ErrCodeNotFound, http.StatusNotFound},
		{appErrors.InsufficientStockError("x"), appErrors.ErrCodeInsufficientStock, http.StatusConflict},
		{appErrors.DuplicateEntryError("x"), appErrors.ErrCodeDuplicateEntry, http.StatusConflict},
		{appErrors.ThirdPartyError("x"), appErrors.ErrCodeThirdPartyError, http.StatusBadGateway},
		{appErrors.TooManyRequestsError("x"), appErrors.ErrCodeTooManyRequests, http.StatusTooManyRequests},
		{appErrors.New("SOMETHING_ELSE", "x"), "SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.StatusCode)
		})
	}
}

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("placing order: %w", appErrors.DatabaseError("Failed to create order").WithError(cause))

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Failed to create order", appErr.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, appErrors.DatabaseError(""))
	assert.NotErrorIs(t, err, appErrors.NotFoundError(""))

	_, ok = appErrors.IsAppError(cause)
	assert.False(t, ok)
}

func TestFieldError(t *testing.T) {
	err := appErrors.FieldError("quantity", "must be positive").WithDetail("line 2")

	assert.Equal(t, appErrors.ErrCodeValidation, err.Code)
	assert.Equal(t, "Invalid field 'quantity': must be positive", err.Message)
	assert.Equal(t, "line 2", err.Detail)
}
