// Package apperrors defines the error taxonomy shared by the cryptographic
// operations, the user store and the REST layer.
//
// Operations wrap one of the sentinel errors below with fmt.Errorf("...: %w")
// so callers can classify failures with errors.Is without parsing messages.
package apperrors

import (
	"context"
	"errors"
	"net/http"
)

var (
	// ErrValidation is returned for missing or malformed input.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrIntegrity is returned when an authentication tag does not verify.
	ErrIntegrity = errors.New("integrity check failed")

	// ErrCryptoOperation is returned when key generation, padding or a cipher fails.
	ErrCryptoOperation = errors.New("cryptographic operation failed")
)

// HTTPStatus maps an error onto the status code reported at the request boundary.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrIntegrity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
