package templates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/withbatteries/create-batteries/internal/errors"
)

func TestSource_EmbeddedCatalog(t *testing.T) {
	for _, id := range TemplateIDs() {
		t.Run(id, func(t *testing.T) {
			src, err := Source(id, "")
			require.NoError(t, err)

			_, err = fs.Stat(src, ManifestFile)
			assert.NoError(t, err)

			_, err = fs.Stat(src, "_gitignore")
			assert.NoError(t, err, "embedded template must keep _gitignore")
		})
	}
}

func TestSource_UnknownTemplate(t *testing.T) {
	_, err := Source("vue", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestSource_TemplatesDir(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "batteries-react-ts")
	require.NoError(t, os.MkdirAll(tmpl, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpl, "package.json"), []byte(`{"name":"x"}`), 0o644))

	src, err := Source("react-ts", dir)
	require.NoError(t, err)

	data, err := fs.ReadFile(src, "package.json")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"x"}`, string(data))
}

func TestSource_MissingManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "batteries-next-js"), 0o755))

	_, err := Source("next-js", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "has no package.json")
}

func TestListFiles(t *testing.T) {
	src, err := Source("react-ts", "")
	require.NoError(t, err)

	files, err := ListFiles(src)
	require.NoError(t, err)

	assert.Contains(t, files, ".gitignore")
	assert.Contains(t, files, "package.json")
	assert.Contains(t, files, "src/App.tsx")
	assert.NotContains(t, files, "_gitignore")
}
