package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
		Platform:  "linux/amd64",
	}

	str := info.String()

	assert.Contains(t, str, "create-batteries v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
	assert.Contains(t, str, "linux/amd64")
}
