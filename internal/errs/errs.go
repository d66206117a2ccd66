// Package errs defines the error shape every endpoint answers with.
//
// Services speak three failure kinds:
//   - invalid request (400): the entity fails its shape predicate or
//     references a record that does not exist
//   - not found (404): a lookup found nothing
//   - conflict (409): a natural key (username, email, business name)
//     already belongs to a different record
package errs

import (
	"errors"
	"net/http"
	"strings"
)

// Status-only sentinels for errors.Is checks. They are never returned.
var (
	ErrInvalidRequest = &HTTPError{Status: http.StatusBadRequest}
	ErrNotFound       = &HTTPError{Status: http.StatusNotFound}
	ErrConflict       = &HTTPError{Status: http.StatusConflict}
)

// NewInvalidRequestError creates a 400 for an entity that failed
// validation, coded after the entity: "hours" gives "HOURS_INVALID".
func NewInvalidRequestError(entity, message string) *HTTPError {
	code := MakeUpperCaseWithUnderscores(strings.TrimSpace(entity)) + "_INVALID"
	return NewBadRequestError(message, true, &code, nil, nil)
}

// StatusOf returns the status carried by err, or 500.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return http.StatusInternalServerError
}
