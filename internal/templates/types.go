// Package templates provides the template catalog for create-batteries and
// the engine that materializes a template into a target directory.
package templates

import (
	"github.com/charmbracelet/lipgloss"
)

// Framework is a top-level template family, e.g. "react".
type Framework struct {
	// ID is the framework identifier shown in the selection prompt.
	ID string

	// Color is used to render the framework label.
	Color lipgloss.Color

	// Variants are the concrete templates of this framework. A framework
	// without variants is itself a template.
	Variants []Variant
}

// HasVariants reports whether the framework offers variants.
func (f Framework) HasVariants() bool {
	return len(f.Variants) > 0
}

// Variant is a concrete, independently selectable template of a Framework.
type Variant struct {
	// ID is the template identifier, e.g. "react-ts".
	ID string

	// Display is the human label, e.g. "TypeScript".
	Display string

	// Color is used to render the variant label.
	Color lipgloss.Color
}

// ManifestFile is the template's package-description file. It is excluded
// from the bulk copy and written by MergeManifest instead.
const ManifestFile = "package.json"

// RenameFiles maps template file names that cannot ship literally to the
// names they are written under.
var RenameFiles = map[string]string{
	"_gitignore": ".gitignore",
}

// ExcludeFiles lists root-relative template paths skipped by the bulk copy.
var ExcludeFiles = map[string]bool{
	ManifestFile: true,
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// Root is the absolute target directory.
	Root string

	// TemplateID is the resolved template identifier.
	TemplateID string

	// PackageName is written to the manifest name field.
	PackageName string

	// Overwrite empties Root before copying.
	Overwrite bool
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Files is the list of files created, relative to Root.
	Files []string

	// TemplateID is the template that was used.
	TemplateID string

	// Root is the directory where files were created.
	Root string

	// Manifest holds the manifest before and after the name override.
	Manifest *ManifestResult
}
