package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat specifies how listings are written.
type OutputFormat string

const (
	// FormatTable outputs a styled table.
	FormatTable OutputFormat = "table"

	// FormatJSON outputs indented JSON.
	FormatJSON OutputFormat = "json"

	// FormatYAML outputs YAML.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// The second return value is false for unknown formats.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return OutputFormat(s), false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}

// WriteStructured encodes v to w as JSON or YAML.
func WriteStructured(w io.Writer, format OutputFormat, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not structured", format)
	}
}
