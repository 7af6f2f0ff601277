package templates

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	oerrors "github.com/withbatteries/create-batteries/internal/errors"
	"github.com/withbatteries/create-batteries/internal/output"
)

// VCSDir is the version-control metadata directory tolerated by IsEmpty.
const VCSDir = ".git"

// Exists reports whether dir exists in fsys.
func Exists(fsys billy.Filesystem, dir string) (bool, error) {
	_, err := fsys.Stat(dir)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, oerrors.NewFilesystemError("inspecting", dir, err)
}

// IsEmpty reports whether dir has no entries, or only the version-control
// metadata directory.
func IsEmpty(fsys billy.Filesystem, dir string) (bool, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return false, oerrors.NewFilesystemError("reading", dir, err)
	}
	return len(entries) == 0 || (len(entries) == 1 && entries[0].Name() == VCSDir), nil
}

// EmptyDir removes every entry of dir, version-control metadata included.
// A missing dir is not an error.
func EmptyDir(fsys billy.Filesystem, dir string) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return oerrors.NewFilesystemError("reading", dir, err)
	}

	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if err := util.RemoveAll(fsys, p); err != nil {
			return oerrors.NewFilesystemError("removing", p, err)
		}
		output.Debug("removed", "path", p)
	}
	return nil
}

// PrepareTarget readies dir for materialization: it is emptied when
// overwrite is set and created when it does not exist.
func PrepareTarget(fsys billy.Filesystem, dir string, overwrite bool) error {
	if overwrite {
		return EmptyDir(fsys, dir)
	}

	exists, err := Exists(fsys, dir)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return oerrors.NewFilesystemError("creating", dir, err)
	}
	return nil
}
