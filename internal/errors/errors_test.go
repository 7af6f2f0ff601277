//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrCancelled, ErrValidation)
	assert.NotEqual(t, ErrFilesystem, ErrPermission)
	assert.NotEqual(t, ErrManifest, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "/home/me/.batteries/config.yaml",
		Field:    "templatesDir",
		Context:  map[string]string{"Source": "env"},
		Hint:     "Point templatesDir at an existing directory",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /home/me/.batteries/config.yaml")
	assert.Contains(t, output, "Field: templatesDir")
	assert.Contains(t, output, "Source: env")
	assert.Contains(t, output, "invalid value")
	assert.Contains(t, output, "Hint: Point templatesDir at an existing directory")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid value", "config.yaml", "defaultTargetDir", "Use a directory name")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "defaultTargetDir", detail.Field)
}

func TestNewManifestError(t *testing.T) {
	cause := errors.New("unexpected end of input")
	err := NewManifestError("could not parse package.json", "batteries-react-ts/package.json", cause)

	assert.True(t, errors.Is(err, ErrManifest))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, ExitManifestError, ExitCodeFromError(err))
}

func TestNewFilesystemError(t *testing.T) {
	t.Run("plain io failure", func(t *testing.T) {
		err := NewFilesystemError("copying", "src/App.tsx", errors.New("disk full"))
		assert.True(t, errors.Is(err, ErrFilesystem))
		assert.Contains(t, err.Error(), "copying src/App.tsx")
	})

	t.Run("permission failure", func(t *testing.T) {
		err := NewFilesystemError("creating", "/root/app", fs.ErrPermission)
		assert.True(t, errors.Is(err, ErrPermission))
		assert.False(t, errors.Is(err, ErrFilesystem))
	})
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "template lookup failed")

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "template lookup failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"cancellation is not a failure", fmt.Errorf("flow: %w", ErrCancelled), ExitSuccess},
		{"validation error", ErrValidation, ExitValidationError},
		{"permission error", ErrPermission, ExitPermissionDenied},
		{"not found error", ErrNotFound, ExitNotFound},
		{"filesystem error", fmt.Errorf("copy: %w", ErrFilesystem), ExitFilesystemError},
		{"manifest error", ErrManifest, ExitManifestError},
		{"explicit exit error", NewExitError(errors.New("boom"), 42), 42},
		{"unknown error returns general error", errors.New("something went wrong"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeFromError(tt.err))
		})
	}
}
