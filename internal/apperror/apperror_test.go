package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromKeepsAppError(t *testing.T) {
	wrapped := fmt.Errorf("loading project: %w", NotFound("Project not found"))

	appErr := From(wrapped)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Project not found", appErr.Message)
}

func TestFromWrapsUnknownAsInternal(t *testing.T) {
	cause := errors.New("disk full")

	appErr := From(cause)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.ErrorIs(t, appErr, cause)
}

func TestValidation(t *testing.T) {
	appErr := Validation([]string{"Name is required"}, nil)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, []string{"Name is required"}, appErr.Details)
	assert.Equal(t, "Please fill in all required fields", appErr.Error())
}
