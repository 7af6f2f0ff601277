package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemFS(t *testing.T) {
	fsys := MemFS(t, map[string]string{
		"/proj/b.txt":     "b",
		"/proj/a/one.txt": "1",
		"/empty/":         "",
	})

	assert.Equal(t, "b", ReadFile(t, fsys, "/proj/b.txt"))
	assert.Equal(t, []string{"a/one.txt", "b.txt"}, ListFiles(t, fsys, "/proj"))

	info, err := fsys.Stat("/empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Empty(t, ListFiles(t, fsys, "/empty"))
}

func TestListFiles_MissingRoot(t *testing.T) {
	fsys := MemFS(t, nil)
	assert.Empty(t, ListFiles(t, fsys, "/nowhere"))
}
