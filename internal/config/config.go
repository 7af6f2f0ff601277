// Package config provides configuration loading and management.
package config

import (
	"gopkg.in/yaml.v3"
)

const (
	// DefaultTargetDir is the project directory offered when none is given.
	DefaultTargetDir = "with-batteries-project"

	// DefaultPackageManager is named in the closing instructions when the
	// CLI was not launched through a package manager.
	DefaultPackageManager = "npm"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the create-batteries configuration.
// Loaded from ~/.batteries/config.yaml.
type Config struct {
	// DefaultTargetDir is offered when no target directory is given.
	// Env: BATTERIES_DEFAULT_TARGET_DIR
	DefaultTargetDir string `mapstructure:"defaultTargetDir" yaml:"defaultTargetDir"`

	// TemplatesDir replaces the built-in templates with
	// <templatesDir>/batteries-<id> directories.
	// Env: BATTERIES_TEMPLATES_DIR
	TemplatesDir string `mapstructure:"templatesDir" yaml:"templatesDir,omitempty"`

	// PackageManager is named in the closing instructions when the CLI was
	// not launched through a package manager.
	// Env: BATTERIES_PACKAGE_MANAGER
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager"`

	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `create-batteries config init` to generate the initial file.
func DefaultConfig() *Config {
	return &Config{
		DefaultTargetDir: DefaultTargetDir,
		PackageManager:   DefaultPackageManager,
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.DefaultTargetDir == "" {
		out.DefaultTargetDir = def.DefaultTargetDir
	}
	if out.PackageManager == "" {
		out.PackageManager = def.PackageManager
	}
	return &out
}

// Marshal renders c as a YAML config file.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
