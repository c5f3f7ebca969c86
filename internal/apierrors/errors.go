// Package apierrors defines errors that carry an HTTP status code from the
// service layer to the request boundary.
package apierrors

import (
	"fmt"
	"net/http"
)

// APIError is a service-level error with an associated HTTP status code.
// The message is safe to return to the caller.
type APIError struct {
	HTTPCode int
	Message  string
	// Err is the underlying cause, kept for logs only. It is never
	// rendered in a response body.
	Err error
}

// Error returns the caller-facing message.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewErrValidation creates a 400 error with a descriptive message.
func NewErrValidation(format string, args ...any) *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Message:  fmt.Sprintf(format, args...),
	}
}

// NewErrUnauthenticated creates a 401 error.
func NewErrUnauthenticated(message string) *APIError {
	return &APIError{
		HTTPCode: http.StatusUnauthorized,
		Message:  message,
	}
}

// NewErrForbidden creates a 403 error.
func NewErrForbidden() *APIError {
	return &APIError{
		HTTPCode: http.StatusForbidden,
		Message:  "you do not have permission to perform this action",
	}
}

// NewErrNotFound creates a 404 error naming the missing resource.
func NewErrNotFound(resource string) *APIError {
	return &APIError{
		HTTPCode: http.StatusNotFound,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// NewErrEmailIsTaken creates a 409 error for a duplicate email.
func NewErrEmailIsTaken(email string) *APIError {
	return &APIError{
		HTTPCode: http.StatusConflict,
		Message:  fmt.Sprintf("a user with email %s already exists", email),
	}
}

// NewErrInternalServerError creates a 500 error with a generic message.
// The cause is retained for logging but not exposed.
func NewErrInternalServerError(err error) *APIError {
	return &APIError{
		HTTPCode: http.StatusInternalServerError,
		Message:  "internal server error",
		Err:      err,
	}
}
