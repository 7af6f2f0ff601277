// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

// stdout receives Print and Println output.
var stdout io.Writer = os.Stdout

// stderr receives log output.
var stderr io.Writer = os.Stderr

func init() {
	logger = log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and forces timestamps on.
	Verbose bool

	// Timestamps toggles timestamps. Nil means the default (on).
	Timestamps *bool
}

// SetupLogging configures the logger based on verbosity.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// Logger returns the global logger.
func Logger() *log.Logger {
	return logger
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// SetStderr redirects log output for loggers built by SetupLogging and
// returns the previous writer.
func SetStderr(w io.Writer) io.Writer {
	prev := stderr
	stderr = w
	return prev
}

// SetStdout redirects Print and Println and returns the previous writer.
func SetStdout(w io.Writer) io.Writer {
	prev := stdout
	stdout = w
	return prev
}

// Stdout returns the writer used by Print and Println.
func Stdout() io.Writer {
	return stdout
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	io.WriteString(stdout, msg+"\n")
}
