// Package errors provides sentinel errors and structured error details for
// the create-batteries CLI.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	// A cancelled prompt flow also exits with ExitSuccess.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input or configuration.
	ExitValidationError = 2

	// ExitPermissionDenied indicates insufficient filesystem permissions.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a template, file or config was not found.
	ExitNotFound = 5

	// ExitFilesystemError indicates an I/O failure while scaffolding.
	ExitFilesystemError = 6

	// ExitManifestError indicates the template manifest is malformed.
	ExitManifestError = 7
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Field is the field name for manifest or config errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewManifestError creates a manifest parse error with details.
func NewManifestError(message, location string, cause error) error {
	return &DetailError{
		Type:     "invalid manifest",
		Message:  message,
		Location: location,
		Hint:     "The template manifest must be a well-formed JSON object.",
		Cause:    errors.Join(ErrManifest, cause),
	}
}

// NewFilesystemError wraps an I/O failure on path. Permission failures are
// additionally marked with ErrPermission.
func NewFilesystemError(op, path string, cause error) error {
	sentinel := ErrFilesystem
	if errors.Is(cause, fs.ErrPermission) {
		sentinel = ErrPermission
	}
	return fmt.Errorf("%s %s: %w: %w", op, path, sentinel, cause)
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed reports whether the error was already shown to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrCancelled):
		return ExitSuccess
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrManifest):
		return ExitManifestError
	case errors.Is(err, ErrFilesystem):
		return ExitFilesystemError
	default:
		return ExitGeneralError
	}
}
