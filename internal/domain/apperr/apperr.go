// Package apperr holds the error categories shared by every layer.
//
// Specific errors wrap exactly one category so callers can branch with errors.Is
// without knowing which component produced the failure:
//
//	var ErrEmptyAddress = fmt.Errorf("%w: address is required", apperr.ErrValidation)
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means no session, an expired session or bad credentials.
	// Callers must send the user back to login.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the session is valid but the identity is not a party to the record.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation means malformed input; detected before any write.
	ErrValidation = errors.New("validation failed")
	// ErrConflict means the write would violate a uniqueness rule (slot taken, email taken).
	ErrConflict = errors.New("conflict")
	// ErrInvalidTransition means the booking state machine rejects the change.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotFound means a referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNetwork means a transport failure, a timeout or a non-2xx response.
	// The previous state is authoritative.
	ErrNetwork = errors.New("network error")
	// ErrIndeterminate means a write may or may not have been applied by the remote store.
	ErrIndeterminate = errors.New("outcome unknown")
	// ErrInference means the analysis service answered with an explicit error.
	ErrInference = errors.New("inference error")
)

// Validation builds an ErrValidation with a human-readable reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Reason strips the category prefix from a wrapped error message.
// "validation failed: address is required" becomes "address is required".
func Reason(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, c := range []error{
		ErrUnauthenticated, ErrForbidden, ErrValidation, ErrConflict, ErrInvalidTransition,
		ErrNotFound, ErrNetwork, ErrIndeterminate, ErrInference,
	} {
		prefix := c.Error() + ": "
		if errors.Is(err, c) && len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
