package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	oerrors "github.com/withbatteries/create-batteries/internal/errors"
	"github.com/withbatteries/create-batteries/internal/flow"
	"github.com/withbatteries/create-batteries/internal/output"
	"github.com/withbatteries/create-batteries/internal/pkgmanager"
	"github.com/withbatteries/create-batteries/internal/prompt"
	"github.com/withbatteries/create-batteries/internal/templates"
)

type createOptions struct {
	Options
	template string
}

func runCreate(cmd *cobra.Command, args []string, opts *createOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Read once, before anything can change the environment.
	pm := pkgmanager.FromEnv()
	cfg := GetConfig()

	cwd := opts.Cwd
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return oerrors.NewFilesystemError("resolving", "working directory", err)
		}
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = osfs.New("/")
	}

	driver := opts.Driver
	if driver == nil {
		driver = prompt.NewSurveyDriver()
	}

	var targetArg string
	if len(args) > 0 {
		targetArg = args[0]
	}

	controller := flow.New(driver, flow.Context{
		TargetDirArg:     targetArg,
		TemplateHint:     opts.template,
		Cwd:              cwd,
		FS:               fsys,
		DefaultTargetDir: cfg.DefaultTargetDir,
	})

	answers, err := controller.Run(ctx)
	if errors.Is(err, oerrors.ErrCancelled) {
		output.Debug("flow cancelled", "error", err)
		output.Println(output.FormatCross("Operation cancelled"))
		return nil
	}
	if err != nil {
		return err
	}

	templateID, err := flow.Resolve(answers, opts.template)
	if err != nil {
		return err
	}

	root := controller.Root()
	output.Println(fmt.Sprintf("\nSetting up your project in %s...", root))

	gen := templates.NewGenerator(fsys, cfg.TemplatesDir, templates.GenerateOptions{
		Root:        root,
		TemplateID:  templateID,
		PackageName: controller.PackageName(),
		Overwrite:   answers.Overwrite == flow.OverwriteConfirmed,
	})

	var result *templates.GenerateResult
	err = output.RunWithSpinner(ctx, func() error {
		var genErr error
		result, genErr = gen.Generate(ctx)
		return genErr
	}, output.WithTitle(fmt.Sprintf("Copying %s template...", templateID)))
	if err != nil {
		output.Error("scaffolding failed", "template", templateID, "error", err)
		exitErr := oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
		exitErr.Printed = true
		return exitErr
	}

	if verboseFlag && result.Manifest != nil {
		diff, err := output.DocumentDiff(result.Manifest.Before, result.Manifest.After, output.IsTTY())
		if err != nil {
			output.Debug("could not diff manifest", "error", err)
		} else {
			output.Debug("manifest changes\n" + diff)
		}
	}

	output.Println("")
	output.Print(output.RenderFileTree(filepath.Base(root), result.Files))

	rel, err := filepath.Rel(cwd, root)
	if err != nil {
		rel = root
	}

	output.Println("\nDone. Now run:\n")
	for _, step := range pkgmanager.NextSteps(pm, rel, cfg.PackageManager) {
		output.Println("  " + step)
	}
	output.Println("")

	return nil
}
