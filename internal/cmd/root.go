// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/go-git/go-billy/v5"
	"github.com/spf13/cobra"

	"github.com/withbatteries/create-batteries/internal/config"
	"github.com/withbatteries/create-batteries/internal/output"
	"github.com/withbatteries/create-batteries/internal/prompt"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	loadedConfig *config.Config
)

// Options replaces the terminal, filesystem and working directory used by
// the create command. Zero fields fall back to the real ones.
type Options struct {
	Driver prompt.Driver
	FS     billy.Filesystem
	Cwd    string
}

// NewRootCmd creates the root command for the create-batteries CLI.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command with the given seams.
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	create := &createOptions{Options: opts}

	rootCmd := &cobra.Command{
		Use:   "create-batteries [target-dir]",
		Short: "Scaffold a new web project with batteries included",
		Long: `create-batteries scaffolds a new project from a built-in template.

It asks for whatever was not given on the command line: the target
directory, whether to clear it when it is not empty, a package name when
the directory name is not a valid one, and the framework and variant.

Examples:
  # Answer every question interactively
  create-batteries

  # Create ./my-app from the React + TypeScript template
  create-batteries my-app --template react-ts

  # Scaffold into the current directory
  create-batteries . -t next-js`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, create)
		},
	}

	rootCmd.Flags().StringVarP(&create.template, "template", "t", "",
		"Template to use, skipping the framework questions")
	rootCmd.Flags().StringVarP(&create.template, "batteries", "b", "",
		"Alias for --template")

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: BATTERIES_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		output.Debug("could not resolve config path", "error", err)
	}

	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		// Don't fail here - commands fall back to defaults and
		// `config vet` reports the problem.
		output.Debug("config load error", "error", err)
		cfg = config.DefaultConfig()
	}
	loadedConfig = cfg.WithDefaults()

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if loadedConfig.Log.Timestamps != nil {
		logCfg.Timestamps = loadedConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		config.LogResolvedValues([]config.ResolvedValue{
			pathResult,
			{Key: "defaultTargetDir", Value: loadedConfig.DefaultTargetDir},
			{Key: "templatesDir", Value: loadedConfig.TemplatesDir},
			{Key: "packageManager", Value: loadedConfig.PackageManager},
		})
	}

	return nil
}

// GetConfig returns the loaded configuration, or the defaults when no
// command has run yet.
func GetConfig() *config.Config {
	if loadedConfig == nil {
		return config.DefaultConfig()
	}
	return loadedConfig
}

// GetConfigPath returns the raw --config flag value.
func GetConfigPath() string {
	return configFlag
}
