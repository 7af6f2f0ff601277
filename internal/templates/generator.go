package templates

import (
	"context"
	"sort"

	"github.com/go-git/go-billy/v5"

	oerrors "github.com/withbatteries/create-batteries/internal/errors"
	"github.com/withbatteries/create-batteries/internal/output"
)

// Generator materializes a resolved template into a target directory.
type Generator struct {
	fsys         billy.Filesystem
	templatesDir string
	opts         GenerateOptions
}

// NewGenerator creates a generator writing through fsys. templatesDir
// overrides the embedded catalog when non-empty.
func NewGenerator(fsys billy.Filesystem, templatesDir string, opts GenerateOptions) *Generator {
	return &Generator{fsys: fsys, templatesDir: templatesDir, opts: opts}
}

// Generate prepares the target, copies every non-manifest file and writes
// the merged manifest. Nothing is rolled back on failure.
func (g *Generator) Generate(ctx context.Context) (*GenerateResult, error) {
	src, err := Source(g.opts.TemplateID, g.templatesDir)
	if err != nil {
		return nil, err
	}

	output.Debug("generating project",
		"template", g.opts.TemplateID,
		"name", g.opts.PackageName,
		"root", g.opts.Root,
		"overwrite", g.opts.Overwrite)

	if err := PrepareTarget(g.fsys, g.opts.Root, g.opts.Overwrite); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dst, err := g.fsys.Chroot(g.opts.Root)
	if err != nil {
		return nil, oerrors.NewFilesystemError("opening", g.opts.Root, err)
	}

	files, err := Materialize(src, dst, DefaultMaterializeOptions())
	if err != nil {
		return nil, err
	}

	manifest, err := MergeManifest(src, dst, g.opts.PackageName)
	if err != nil {
		return nil, err
	}

	files = append(files, ManifestFile)
	sort.Strings(files)

	return &GenerateResult{
		Files:      files,
		TemplateID: g.opts.TemplateID,
		Root:       g.opts.Root,
		Manifest:   manifest,
	}, nil
}
