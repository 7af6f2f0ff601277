package cmd

import (
	"github.com/spf13/cobra"

	"github.com/withbatteries/create-batteries/internal/output"
	"github.com/withbatteries/create-batteries/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show create-batteries version information.

Displays the CLI version, commit, build date, Go version and platform.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	output.Println(version.Get().String())
	return nil
}
