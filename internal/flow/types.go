// Package flow runs the question sequence that collects a new project's
// options. Later questions depend on earlier answers and on the state of
// the target directory.
package flow

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/withbatteries/create-batteries/internal/templates"
)

// DefaultTargetDir is used when no target directory is given or answered.
const DefaultTargetDir = "with-batteries-project"

// Overwrite records the answer to the non-empty target question.
type Overwrite int

const (
	// OverwriteNotApplicable means the question was not asked.
	OverwriteNotApplicable Overwrite = iota
	// OverwriteConfirmed means existing files are removed.
	OverwriteConfirmed
	// OverwriteDeclined cancels the run.
	OverwriteDeclined
)

func (o Overwrite) String() string {
	switch o {
	case OverwriteConfirmed:
		return "confirmed"
	case OverwriteDeclined:
		return "declined"
	default:
		return "n/a"
	}
}

// Answers holds what the user answered. Fields stay zero for questions
// that were skipped.
type Answers struct {
	TargetDirRaw string
	Overwrite    Overwrite
	PackageName  string
	Framework    *templates.Framework
	Variant      string
}

// TemplateID resolves the final template: the chosen variant, else the hint
// when it is valid, else the chosen framework.
func (a Answers) TemplateID(hint string) string {
	if a.Variant != "" {
		return a.Variant
	}
	if templates.IsValidTemplateID(hint) {
		return hint
	}
	if a.Framework != nil {
		return a.Framework.ID
	}
	return ""
}

// Context carries the inputs of a run that are not answers.
type Context struct {
	// TargetDirArg is the positional target directory, possibly empty.
	TargetDirArg string

	// TemplateHint is the --template value, possibly empty or invalid.
	TemplateHint string

	// Cwd is the absolute working directory.
	Cwd string

	// FS is used to inspect the target directory. Paths are absolute.
	FS billy.Filesystem

	// DefaultTargetDir overrides DefaultTargetDir when set.
	DefaultTargetDir string
}

func (c Context) defaultTarget() string {
	if d := FormatTargetDir(c.DefaultTargetDir); d != "" {
		return d
	}
	return DefaultTargetDir
}

// TargetDir is the live, formatted target directory. The first question
// writes it and later questions read it.
type TargetDir struct {
	value string
}

// NewTargetDir returns a cell holding dir.
func NewTargetDir(dir string) *TargetDir {
	return &TargetDir{value: dir}
}

func (t *TargetDir) Get() string { return t.value }

func (t *TargetDir) Set(dir string) { t.value = dir }

// FormatTargetDir trims surrounding whitespace and trailing slashes.
func FormatTargetDir(dir string) string {
	return strings.TrimRight(strings.TrimSpace(dir), "/")
}

// ResolveRoot returns the absolute directory for target relative to cwd.
func ResolveRoot(cwd, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(cwd, target)
}

// ProjectName derives the project name from the target directory: the
// working directory's base name for ".", the target itself otherwise.
func ProjectName(cwd, target string) string {
	if target == "." {
		return filepath.Base(cwd)
	}
	return target
}
