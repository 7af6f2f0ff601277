package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/withbatteries/create-batteries/internal/errors"
	"github.com/withbatteries/create-batteries/internal/output"
	"github.com/withbatteries/create-batteries/internal/templates"
)

var (
	listQuiet  bool
	listOutput string
)

// catalogEntry is one template in structured list output.
type catalogEntry struct {
	Framework string `json:"framework" yaml:"framework"`
	Variant   string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Template  string `json:"template" yaml:"template"`
}

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Long: `List the frameworks and templates create-batteries can scaffold.

Any TEMPLATE value can be passed to --template to skip the framework
questions.

Examples:
  # Show the catalog
  create-batteries list

  # Print template identifiers only
  create-batteries list -q

  # Machine-readable catalog
  create-batteries list -o json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "Print template identifiers only")
	cmd.Flags().StringVarP(&listOutput, "output", "o", "table",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	format, ok := output.ParseOutputFormat(listOutput)
	if !ok {
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", listOutput), "", "--output",
			"Valid formats: "+strings.Join(output.ValidFormats(), ", "))
	}

	if listQuiet {
		output.Println(strings.Join(templates.TemplateIDs(), "\n"))
		return nil
	}

	if format != output.FormatTable {
		return output.WriteStructured(output.Stdout(), format, catalog())
	}

	tbl := output.NewTable("FRAMEWORK", "VARIANT", "TEMPLATE")
	for _, f := range templates.Frameworks() {
		if !f.HasVariants() {
			tbl.Row(output.Colorize(f.Color, f.ID), "-", f.ID)
			continue
		}
		for _, v := range f.Variants {
			tbl.Row(output.Colorize(f.Color, f.ID), output.Colorize(v.Color, v.Display), v.ID)
		}
	}

	output.Println(tbl.String())
	return nil
}

func catalog() []catalogEntry {
	var entries []catalogEntry
	for _, f := range templates.Frameworks() {
		if !f.HasVariants() {
			entries = append(entries, catalogEntry{Framework: f.ID, Template: f.ID})
			continue
		}
		for _, v := range f.Variants {
			entries = append(entries, catalogEntry{Framework: f.ID, Variant: v.Display, Template: v.ID})
		}
	}
	return entries
}
