package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// managerNameRegex matches package manager executable names.
var managerNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks the loaded configuration and returns ValidationErrors
// listing every problem found.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if strings.TrimRight(strings.TrimSpace(cfg.DefaultTargetDir), "/") == "" {
		errs = append(errs, ValidationError{
			Field:   "defaultTargetDir",
			Message: "must not be empty",
		})
	}

	if cfg.TemplatesDir != "" {
		info, err := os.Stat(cfg.TemplatesDir)
		switch {
		case err != nil:
			errs = append(errs, ValidationError{
				Field:   "templatesDir",
				Message: fmt.Sprintf("cannot be read: %v", err),
			})
		case !info.IsDir():
			errs = append(errs, ValidationError{
				Field:   "templatesDir",
				Message: "must be a directory",
			})
		}
	}

	if cfg.PackageManager != "" && !managerNameRegex.MatchString(cfg.PackageManager) {
		errs = append(errs, ValidationError{
			Field:   "packageManager",
			Message: "must be a lowercase command name such as npm, pnpm or yarn",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateFile loads and validates the configuration file at path.
func ValidateFile(path string) (*Config, error) {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	return cfg, Validate(cfg)
}
