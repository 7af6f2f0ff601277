package flow

import (
	oerrors "github.com/withbatteries/create-batteries/internal/errors"
)

// CancelledError ends a run without creating anything.
type CancelledError struct {
	// Slot names the question at which the run was cancelled.
	Slot string

	// Cause is the driver or context error, nil for a declined overwrite.
	Cause error
}

func (e *CancelledError) Error() string {
	return "operation cancelled"
}

func (e *CancelledError) Unwrap() error {
	return e.Cause
}

// Is matches oerrors.ErrCancelled.
func (e *CancelledError) Is(target error) bool {
	return target == oerrors.ErrCancelled
}
