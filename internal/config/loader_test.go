package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
defaultTargetDir: my-starter
templatesDir: /srv/templates
packageManager: pnpm
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "my-starter", cfg.DefaultTargetDir)
		assert.Equal(t, "/srv/templates", cfg.TemplatesDir)
		assert.Equal(t, "pnpm", cfg.PackageManager)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "with-batteries-project", cfg.DefaultTargetDir)
		assert.Equal(t, "npm", cfg.PackageManager)
		assert.Empty(t, cfg.TemplatesDir)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("BATTERIES_DEFAULT_TARGET_DIR", "env-app")
		t.Setenv("BATTERIES_PACKAGE_MANAGER", "yarn")
		t.Setenv("BATTERIES_LOG_TIMESTAMPS", "false")

		configFile := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "env-app", cfg.DefaultTargetDir)
		assert.Equal(t, "yarn", cfg.PackageManager)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("BATTERIES_PACKAGE_MANAGER", "bun")

		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(`packageManager: pnpm`), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "bun", cfg.PackageManager)
	})

	t.Run("expands tilde in templatesDir", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(`templatesDir: ~/tmpl`), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "tmpl"), cfg.TemplatesDir)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("defaultTargetDir: [unclosed"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.ErrorContains(t, err, "reading config file")
	})

	t.Run("uses BATTERIES_CONFIG when no path given", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(`defaultTargetDir: from-env-file`), 0o644))
		t.Setenv(EnvConfig, configFile)

		cfg, err := NewLoader().Load("")

		require.NoError(t, err)
		assert.Equal(t, "from-env-file", cfg.DefaultTargetDir)
	})
}

func TestConfigFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(existing, []byte(""), 0o644))

	ok, err := ConfigFileExists(existing)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ConfigFileExists(filepath.Join(tmpDir, "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, ok)
}
