// Package errors defines the application error taxonomy shared by every
// handler: validation failures, lookup misses, a missing store connection,
// and unexpected storage errors. Each error carries the HTTP status it maps
// to so the boundary can shape responses uniformly.
package errors

import (
	"fmt"
	"net/http"
)

// Error represents an application error with its HTTP status code.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation reports a missing or malformed required request field.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// NotFound reports a lookup by id that matched nothing.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// StoreUnavailable reports an operation that strictly requires a live store
// attempted without one.
func StoreUnavailable(message string) *Error {
	return New(http.StatusServiceUnavailable, message, nil)
}

// Internal wraps any other storage-layer failure. The underlying error is
// included in responses only outside production.
func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

// From coerces any error into an *Error, wrapping unknown errors as internal.
func From(err error) *Error {
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return Internal("Internal server error", err)
}
