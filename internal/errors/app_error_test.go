package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessageIncludesCause(t *testing.T) {
	cause := stderrors.New("disk on fire")
	appErr := NewInternalError(cause)

	assert.Equal(t, "Internal server error: disk on fire", appErr.Error())
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	assert.ErrorIs(t, appErr, cause)
}

func TestAppErrorWithoutCause(t *testing.T) {
	appErr := NewNotFoundError("Not Found")

	assert.Equal(t, "Not Found", appErr.Error())
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.Nil(t, appErr.Unwrap())
}

func TestAsAppErrorFindsWrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("handler failed: %w", NewNotFoundError("Element not found"))

	appErr := AsAppError(wrapped)

	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.Equal(t, "Element not found", appErr.Message)
}

func TestConfigErrorKeepsMessageAndCause(t *testing.T) {
	cause := stderrors.New("no such file")
	appErr := NewConfigError("failed to read config file", cause)

	assert.Equal(t, "failed to read config file", appErr.Message)
	assert.Equal(t, "failed to read config file: no such file", appErr.Error())
	assert.ErrorIs(t, appErr, cause)
}

func TestAsAppErrorWrapsPlainError(t *testing.T) {
	cause := stderrors.New("boom")

	appErr := AsAppError(cause)

	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	assert.ErrorIs(t, appErr, cause)
}
