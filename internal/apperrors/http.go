package apperrors

import (
	"errors"
	"net/http"
)

// StatusCode maps a taxonomy error to the HTTP status the boundary layer
// should answer with. Unknown errors map to 500.
func StatusCode(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound
	}

	var authErr *AuthorizationError
	if errors.As(err, &authErr) {
		return http.StatusForbidden
	}

	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return http.StatusConflict
	}

	var businessErr *BusinessLogicError
	if errors.As(err, &businessErr) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}
