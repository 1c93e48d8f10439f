// Package errors defines the application error taxonomy shared by the
// session core and its delivery layer.
package errors

import (
	"net/http"

	"billdesk/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches two BaseErrors by business error code, so a sentinel still
// matches after WithDetails produced a copy.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrInvalidCredentials is returned when the backend rejects a login
	// attempt. User-correctable; shown inline on the login form.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"incorrect email or password",
		"",
	)

	// ErrRegistrationRejected is returned when the backend refuses a
	// registration, e.g. a duplicate tenant slug or email. The backend's
	// human-readable reason travels in Details.
	ErrRegistrationRejected = NewBaseError(
		http.StatusConflict,
		"REGISTRATION_REJECTED",
		"registration was rejected",
		"",
	)

	// ErrUnauthenticated is returned when the backend rejects the current
	// access token. During bootstrap this is an expected, recoverable
	// condition: credentials are purged and the session falls back to
	// anonymous.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"session is no longer valid",
		"",
	)

	// ErrGatewayUnavailable is returned on any transport or server failure
	// that is not a deliberate rejection. Surfaced as a transient
	// notification; never retried automatically.
	ErrGatewayUnavailable = NewBaseError(
		http.StatusBadGateway,
		"GATEWAY_UNAVAILABLE",
		"billing service is unreachable",
		"",
	)

	// ErrStorageUnavailable is returned when the local credential store
	// cannot be read or written. The session treats this as "no stored
	// credentials" rather than failing.
	ErrStorageUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_UNAVAILABLE",
		"local credential storage is unavailable",
		"",
	)

	// ErrSessionSuperseded is returned when a login or registration
	// completes after a logout was issued mid-flight; the stale result is
	// discarded rather than applied.
	ErrSessionSuperseded = NewBaseError(
		http.StatusConflict,
		"SESSION_SUPERSEDED",
		"sign-in was superseded by a sign-out",
		"",
	)

	// ErrValidationFailed is returned when form input fails validation
	// before any gateway call is made.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)
)
