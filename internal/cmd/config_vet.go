package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/withbatteries/create-batteries/internal/config"
	oerrors "github.com/withbatteries/create-batteries/internal/errors"
	"github.com/withbatteries/create-batteries/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the create-batteries configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. defaultTargetDir is not empty
  4. templatesDir, when set, is an existing directory
  5. packageManager is a plain command name

The config path is resolved using precedence:
  --config flag > BATTERIES_CONFIG env > ~/.batteries/config.yaml

Examples:
  # Validate default configuration
  create-batteries config vet

  # Validate custom config path
  create-batteries config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	pathResult, err := config.ResolveConfigPath(GetConfigPath())
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}

	configPath, err := config.ExpandPath(fmt.Sprint(pathResult.Value))
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not expand config path")
	}

	output.Debug("validating config",
		"path", configPath,
		"source", pathResult.Source,
	)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return oerrors.NewNotFoundError(
			"configuration file not found",
			configPath,
			"Run 'create-batteries config init' to create default configuration",
		)
	}

	_, err = config.ValidateFile(configPath)
	if err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			return &oerrors.DetailError{
				Type:     "validation failed",
				Message:  verrs.Error(),
				Location: configPath,
				Hint:     "Fix the listed fields or regenerate with 'create-batteries config init --force'.",
				Cause:    errors.Join(oerrors.ErrValidation, err),
			}
		}
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: configPath,
			Cause:    errors.Join(oerrors.ErrValidation, err),
		}
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + configPath))
	return nil
}
