package errors

import (
	"net/http"
	"testing"

	"harvest/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrInsufficientStock.WithDetails("Mango: requested 5, available 2")

	assert.True(t, errors.Is(err, ErrInsufficientStock))
	assert.False(t, errors.Is(err, ErrProductNotFound))
	assert.Equal(t, "Mango: requested 5, available 2", err.Details())
	assert.Equal(t, http.StatusConflict, err.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrOrderNotFound.WrapMessage("order 42")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrOrderNotFound))
	assert.Contains(t, err.Error(), "order 42")
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("connection reset"), "failed to insert order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
}
