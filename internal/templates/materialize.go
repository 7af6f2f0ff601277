package templates

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"

	oerrors "github.com/withbatteries/create-batteries/internal/errors"
	"github.com/withbatteries/create-batteries/internal/output"
)

// MaterializeOptions controls how a template tree is mirrored.
type MaterializeOptions struct {
	// Rename maps entry base names to the names they are written under.
	// It applies at every depth.
	Rename map[string]string

	// Exclude lists root-relative, slash-separated paths that are not
	// copied. An excluded directory is skipped entirely.
	Exclude map[string]bool
}

// DefaultMaterializeOptions returns the options used for every template.
func DefaultMaterializeOptions() MaterializeOptions {
	return MaterializeOptions{
		Rename:  RenameFiles,
		Exclude: ExcludeFiles,
	}
}

// Materialize mirrors src into dst. Directories are created recursively
// and files are copied byte for byte. It returns the created file paths,
// relative to dst and slash-separated. A failure part way leaves dst
// partially populated.
func Materialize(src fs.FS, dst billy.Filesystem, opts MaterializeOptions) ([]string, error) {
	var created []string

	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return oerrors.NewFilesystemError("reading template", p, err)
		}
		if p == "." {
			return nil
		}

		if opts.Exclude[p] {
			output.Debug("skipping", "path", p)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel := renamePath(p, opts.Rename)
		target := filepath.FromSlash(rel)

		if d.IsDir() {
			if err := dst.MkdirAll(target, 0o755); err != nil {
				return oerrors.NewFilesystemError("creating", rel, err)
			}
			return nil
		}

		if err := copyFile(src, p, dst, target); err != nil {
			return err
		}

		output.Debug("copied", "from", p, "to", rel)
		created = append(created, rel)
		return nil
	})

	return created, err
}

// copyFile copies one regular file. Executable bits survive; everything
// else is written 0644 so read-only embedded files stay editable.
func copyFile(src fs.FS, from string, dst billy.Filesystem, to string) error {
	in, err := src.Open(from)
	if err != nil {
		return oerrors.NewFilesystemError("opening", from, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return oerrors.NewFilesystemError("inspecting", from, err)
	}

	perm := os.FileMode(0o644)
	if info.Mode().Perm()&0o111 != 0 {
		perm = 0o755
	}

	if dir := filepath.Dir(to); dir != "." {
		if err := dst.MkdirAll(dir, 0o755); err != nil {
			return oerrors.NewFilesystemError("creating", dir, err)
		}
	}

	out, err := dst.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return oerrors.NewFilesystemError("creating", to, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return oerrors.NewFilesystemError("copying", to, err)
	}

	if err := out.Close(); err != nil {
		return oerrors.NewFilesystemError("writing", to, err)
	}
	return nil
}

// renamePath applies rename to every segment of a slash-separated path.
func renamePath(p string, rename map[string]string) string {
	if len(rename) == 0 {
		return p
	}
	parts := strings.Split(p, "/")
	for i, part := range parts {
		if to, ok := rename[part]; ok {
			parts[i] = to
		}
	}
	return strings.Join(parts, "/")
}
