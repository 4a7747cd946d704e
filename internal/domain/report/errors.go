package report

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("report not found")

	// ErrPermissionDenied is always wrapped with a role-specific reason,
	// e.g. Denied("staff users can only update their own reports").
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidState is the lifecycle guard: reviewing anything that is
	// not currently SUBMITTED fails with this error.
	ErrInvalidState = errors.New("only submitted reports can be reviewed")

	// ErrValidation marks malformed input rejected before it reaches storage.
	ErrValidation = errors.New("invalid input")
)

// Denied wraps ErrPermissionDenied with a human-readable reason.
func Denied(reason string) error {
	return fmt.Errorf("%w: %s", ErrPermissionDenied, reason)
}

// Invalid wraps ErrValidation with a field-level reason.
func Invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}
