package output

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
	tty   func() bool
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// withTTY overrides terminal detection.
func withTTY(tty func() bool) SpinnerOption {
	return func(c *spinnerConfig) {
		c.tty = tty
	}
}

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RunWithSpinner executes an action with a spinner.
// Returns the action's error if any.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
		tty:   IsTTY,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// If not a TTY, just run the action directly
	if !cfg.tty() {
		return action()
	}

	var actionErr error
	spinnerErr := spinner.New().
		Title(cfg.title).
		Context(ctx).
		Action(func() {
			actionErr = action()
		}).
		Run()

	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}

	return actionErr
}
