package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	out := RenderFileTree("my-app", []string{
		"package.json",
		"src/App.tsx",
		".gitignore",
		"src/components/Home.tsx",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, lines[0], "my-app/")
	// directories first
	assert.Contains(t, lines[1], "src/")
	assert.Contains(t, lines[2], "components/")
	assert.Contains(t, lines[3], "Home.tsx")
	assert.Contains(t, lines[4], "App.tsx")
	assert.Contains(t, lines[5], ".gitignore")
	assert.Contains(t, lines[6], "package.json")
}

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderFileTree("my-app", nil))
}
