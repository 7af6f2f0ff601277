package config

import (
	"os"

	"github.com/withbatteries/create-batteries/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) BATTERIES_CONFIG env, (3) ~/.batteries/config.yaml.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "config",
		Shadowed: make(map[ConfigSource]any),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
