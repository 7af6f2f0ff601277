// Package testutil provides filesystem fixtures for create-batteries tests.
package testutil

import (
	"os"
	"path"
	"sort"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// MemFS returns an in-memory filesystem seeded with files, keyed by
// absolute slash path. A key ending in "/" creates an empty directory.
func MemFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fsys := memfs.New()
	for name, content := range files {
		if strings.HasSuffix(name, "/") {
			if err := fsys.MkdirAll(name, 0o755); err != nil {
				t.Fatalf("failed to create dir %s: %v", name, err)
			}
			continue
		}
		WriteFile(t, fsys, name, content)
	}
	return fsys
}

// WriteFile creates a file with the given content, creating parents.
func WriteFile(t *testing.T, fsys billy.Filesystem, name, content string) {
	t.Helper()
	if err := util.WriteFile(fsys, name, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", name, err)
	}
}

// ReadFile returns the content of name, failing the test if it is missing.
func ReadFile(t *testing.T, fsys billy.Filesystem, name string) string {
	t.Helper()
	data, err := util.ReadFile(fsys, name)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", name, err)
	}
	return string(data)
}

// ListFiles returns every regular file under root, relative to root and
// sorted. A missing root yields an empty list.
func ListFiles(t *testing.T, fsys billy.Filesystem, root string) []string {
	t.Helper()
	files := []string{}
	err := util.Walk(fsys, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, path.Clean(root)+"/")
		files = append(files, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", root, err)
	}
	sort.Strings(files)
	return files
}
