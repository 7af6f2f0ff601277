package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/withbatteries/create-batteries/internal/config"
	oerrors "github.com/withbatteries/create-batteries/internal/errors"
	"github.com/withbatteries/create-batteries/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the create-batteries configuration.

Writes config.yaml with the default values to the resolved config path:
  --config flag > BATTERIES_CONFIG env > ~/.batteries/config.yaml

Examples:
  # Initialize configuration
  create-batteries config init

  # Overwrite existing configuration
  create-batteries config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	pathResult, err := config.ResolveConfigPath(GetConfigPath())
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	configPath, err := config.ExpandPath(fmt.Sprint(pathResult.Value))
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not expand config path")
	}

	if _, err := os.Stat(configPath); err == nil && !configInitForce {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configPath,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := config.DefaultConfig().Marshal()
	if err != nil {
		return fmt.Errorf("rendering default config: %w", err)
	}

	// Secure permissions: 0700 for the directory, 0600 for the file
	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return oerrors.NewFilesystemError("creating", filepath.Dir(configPath), err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return oerrors.NewFilesystemError("writing", configPath, err)
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + configPath))
	output.Println("Validate with: create-batteries config vet")

	return nil
}
