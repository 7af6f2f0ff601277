package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette: named ANSI 256 colors used by the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: paths, package names, and the react framework.
	ColorCyan = lipgloss.Color("14")

	// ColorBlue is used for TypeScript variants.
	ColorBlue = lipgloss.Color("12")

	// ColorYellow is used for JavaScript variants.
	ColorYellow = lipgloss.Color("11")

	// ColorMagenta is used for the next framework.
	ColorMagenta = lipgloss.Color("13")

	// ColorRed is used for cancellation and failures.
	ColorRed = lipgloss.Color("9")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (paths, package names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Styles groups the styles used by renderers.
type Styles struct {
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

var defaultStyles = &Styles{
	Bold:    lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(ColorDimGray),
	Success: lipgloss.NewStyle().Foreground(ColorGreenCheck),
	Warning: lipgloss.NewStyle().Foreground(ColorYellow),
	Error:   lipgloss.NewStyle().Foreground(ColorRed),
}

// GetStyles returns the default styles.
func GetStyles() *Styles {
	return defaultStyles
}

// Colorize renders text bold in the given color. It is used for framework
// and variant labels in selection prompts.
func Colorize(color lipgloss.Color, text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorRed).Render("✖")
	return cross + " " + msg
}
