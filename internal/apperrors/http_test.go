package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation maps to 400", NewValidationError("name", "must not be empty"), http.StatusBadRequest},
		{"not found maps to 404", NewNotFoundError("workspace", "some-id"), http.StatusNotFound},
		{"authorization maps to 403", NewAuthorizationError("denied", "", ""), http.StatusForbidden},
		{"conflict maps to 409", NewConflictError("membership", "some-id", "duplicate"), http.StatusConflict},
		{"business rule maps to 422", NewBusinessLogicError("last owner"), http.StatusUnprocessableEntity},
		{"unknown maps to 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusCode(tt.err))
		})
	}
}

func Test_StatusCode_UnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("failed to invite member: %w", NewConflictError("membership", "id", "duplicate"))

	assert.Equal(t, http.StatusConflict, StatusCode(wrapped))
}

func Test_ErrorMessages(t *testing.T) {
	assert.Equal(t, "name: must not be empty", NewValidationError("name", "must not be empty").Error())
	assert.Equal(t, "workspace not found: abc", NewNotFoundError("workspace", "abc").Error())
	assert.Equal(t, "workspace not found", NewNotFoundError("workspace", "").Error())
	assert.Equal(t, "denied", NewAuthorizationError("denied", "", "").Error())
}
