package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	oerrors "github.com/withbatteries/create-batteries/internal/errors"
)

// The all: prefix keeps entries such as _gitignore that embed would
// otherwise drop.
//
//go:embed all:catalog
var catalogFS embed.FS

// catalogRoot is the directory within catalogFS holding the templates.
const catalogRoot = "catalog"

// TemplateDir returns the directory name holding the template id.
func TemplateDir(id string) string {
	return "batteries-" + id
}

// Source resolves a template ID to its file tree. When templatesDir is
// non-empty, templates are read from <templatesDir>/batteries-<id> on disk
// instead of the embedded catalog.
func Source(id, templatesDir string) (fs.FS, error) {
	if !IsValidTemplateID(id) {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("unknown template %q", id),
			"",
			"Run 'create-batteries list' to see available templates.",
		)
	}

	var (
		src      fs.FS
		location string
	)
	if templatesDir != "" {
		location = filepath.Join(templatesDir, TemplateDir(id))
		src = os.DirFS(location)
	} else {
		location = path.Join(catalogRoot, TemplateDir(id))
		sub, err := fs.Sub(catalogFS, location)
		if err != nil {
			return nil, fmt.Errorf("opening embedded template %s: %w", id, err)
		}
		src = sub
	}

	if _, err := fs.Stat(src, ManifestFile); err != nil {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("template %q has no %s", id, ManifestFile),
			location,
			"Every template must contain a manifest at its root.",
		)
	}

	return src, nil
}

// ListFiles returns the paths a template produces in the target directory,
// with renames applied. The manifest is included.
func ListFiles(src fs.FS) ([]string, error) {
	var files []string

	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, renamePath(p, RenameFiles))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
