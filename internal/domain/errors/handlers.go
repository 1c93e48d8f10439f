package errors

import (
	"billdesk/internal/errors"
)

// FromError extracts the first AppError in err's chain, if any.
func FromError(err error) (AppError, bool) {
	if err == nil {
		return nil, false
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// IsUserCorrectable reports whether the error should be surfaced inline on the
// originating form (bad credentials, rejected registration, invalid input)
// rather than as a transient notification.
func IsUserCorrectable(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrRegistrationRejected) ||
		errors.Is(err, ErrValidationFailed)
}
