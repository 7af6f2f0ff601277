package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrCancelled indicates the user aborted the prompt flow.
	ErrCancelled = errors.New("operation cancelled")

	// ErrValidation indicates invalid user input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, file or config was not found.
	ErrNotFound = errors.New("not found")

	// ErrFilesystem indicates an I/O failure while scaffolding.
	ErrFilesystem = errors.New("filesystem error")

	// ErrManifest indicates the template manifest could not be parsed.
	ErrManifest = errors.New("manifest error")
)
