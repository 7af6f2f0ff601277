package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureLog sets up the logger to write to a buffer and returns the buffer.
func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	SetupLogging(cfg)
	logger = log.NewWithOptions(&buf, log.Options{
		Level:           logger.GetLevel(),
		ReportTimestamp: cfg.resolveTimestamps(),
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
	return &buf
}

// resolveTimestamps applies the same logic as SetupLogging for test verification.
func (c LogConfig) resolveTimestamps() bool {
	if c.Verbose {
		return true
	}
	if c.Timestamps != nil {
		return *c.Timestamps
	}
	return true
}

func TestSetupLogging_TimestampDefaultOn(t *testing.T) {
	buf := captureLog(LogConfig{})
	logger.Info("test")
	assert.Contains(t, buf.String(), ":", "default output should contain timestamp separator")
}

func TestSetupLogging_TimestampExplicitlyDisabled(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(false)})
	logger.Info("hello")
	out := buf.String()
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(out),
		"output should not start with a timestamp")
}

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, Logger().GetLevel(), "verbose should set debug level")
}

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, Logger().GetLevel(), "default should be info level")
}

func TestDebugHiddenAtInfoLevel(t *testing.T) {
	buf := captureLog(LogConfig{})
	Debug("copying file", "path", "src/App.tsx")
	assert.Empty(t, buf.String())
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}

func TestSetStdout(t *testing.T) {
	var buf bytes.Buffer
	prev := SetStdout(&buf)
	defer SetStdout(prev)

	Print("a")
	Println("b")
	assert.Equal(t, "ab\n", buf.String())
}

func TestSetStderr(t *testing.T) {
	var buf bytes.Buffer
	prev := SetStderr(&buf)
	defer func() {
		SetStderr(prev)
		SetupLogging(LogConfig{})
	}()

	SetupLogging(LogConfig{Verbose: true})
	Debug("manifest changes", "file", "package.json")

	assert.Contains(t, buf.String(), "manifest changes")
	assert.Contains(t, buf.String(), "package.json")
}
