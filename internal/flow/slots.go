package flow

import (
	"fmt"

	"github.com/withbatteries/create-batteries/internal/output"
	"github.com/withbatteries/create-batteries/internal/templates"
)

// Kind selects how a slot is asked.
type Kind int

const (
	KindText Kind = iota
	KindConfirm
	KindSelect
	// KindCheckpoint never prompts; it only runs Check.
	KindCheckpoint
)

// State is what slots read and write while a run progresses.
type State struct {
	Context Context
	Target  *TargetDir
	Answers *Answers
}

// ProjectName is derived from the live target directory.
func (s *State) ProjectName() string {
	return ProjectName(s.Context.Cwd, s.Target.Get())
}

// Root is the absolute live target directory.
func (s *State) Root() string {
	return ResolveRoot(s.Context.Cwd, s.Target.Get())
}

// Value is one answer as returned by the driver.
type Value struct {
	Text      string
	Confirmed bool
	Index     int
}

// Slot describes one question. Applies, Message, Default and Choices are
// evaluated lazily against the state at the time the slot is reached.
type Slot struct {
	Name    string
	Kind    Kind
	Applies func(s *State) (bool, error)
	Message func(s *State) string

	// Default is the text default. Confirm slots default to no.
	Default  func(s *State) string
	Validate func(answer string) error
	Choices  func(s *State) []string

	Store func(s *State, v Value) error
	Check func(s *State) error
}

// Slots returns the question sequence in evaluation order.
func Slots() []Slot {
	return []Slot{
		targetDirSlot(),
		overwriteSlot(),
		overwriteCheckerSlot(),
		packageNameSlot(),
		frameworkSlot(),
		variantSlot(),
	}
}

func targetDirSlot() Slot {
	return Slot{
		Name: "targetDir",
		Kind: KindText,
		Applies: func(s *State) (bool, error) {
			return FormatTargetDir(s.Context.TargetDirArg) == "", nil
		},
		Message: constant("What is the name of your project?"),
		Default: func(s *State) string { return s.Context.defaultTarget() },
		Store: func(s *State, v Value) error {
			s.Answers.TargetDirRaw = v.Text
			dir := FormatTargetDir(v.Text)
			if dir == "" {
				dir = s.Context.defaultTarget()
			}
			s.Target.Set(dir)
			return nil
		},
	}
}

func overwriteSlot() Slot {
	return Slot{
		Name: "overwrite",
		Kind: KindConfirm,
		Applies: func(s *State) (bool, error) {
			root := s.Root()
			exists, err := templates.Exists(s.Context.FS, root)
			if err != nil || !exists {
				return false, err
			}
			empty, err := templates.IsEmpty(s.Context.FS, root)
			return !empty, err
		},
		Message: func(s *State) string {
			subject := fmt.Sprintf("Target directory %q", s.Target.Get())
			if s.Target.Get() == "." {
				subject = "Current directory"
			}
			return subject + " is not empty. Remove existing files and continue?"
		},
		Store: func(s *State, v Value) error {
			if v.Confirmed {
				s.Answers.Overwrite = OverwriteConfirmed
			} else {
				s.Answers.Overwrite = OverwriteDeclined
			}
			return nil
		},
	}
}

func overwriteCheckerSlot() Slot {
	return Slot{
		Name: "overwriteChecker",
		Kind: KindCheckpoint,
		Check: func(s *State) error {
			if s.Answers.Overwrite == OverwriteDeclined {
				return &CancelledError{Slot: "overwrite"}
			}
			return nil
		},
	}
}

func packageNameSlot() Slot {
	return Slot{
		Name: "packageName",
		Kind: KindText,
		Applies: func(s *State) (bool, error) {
			return !templates.IsValidPackageName(s.ProjectName()), nil
		},
		Message: constant("Package name:"),
		Default: func(s *State) string {
			return templates.ToValidPackageName(s.ProjectName())
		},
		Validate: templates.ValidatePackageName,
		Store: func(s *State, v Value) error {
			s.Answers.PackageName = v.Text
			return nil
		},
	}
}

func frameworkSlot() Slot {
	return Slot{
		Name: "framework",
		Kind: KindSelect,
		Applies: func(s *State) (bool, error) {
			return !templates.IsValidTemplateID(s.Context.TemplateHint), nil
		},
		Message: func(s *State) string {
			if s.Context.TemplateHint != "" {
				return fmt.Sprintf("%q isn't a valid template. Please choose from below: ", s.Context.TemplateHint)
			}
			return "Select a framework:"
		},
		Choices: func(*State) []string {
			var labels []string
			for _, f := range templates.Frameworks() {
				labels = append(labels, output.Colorize(f.Color, f.ID))
			}
			return labels
		},
		Store: func(s *State, v Value) error {
			frameworks := templates.Frameworks()
			if v.Index < 0 || v.Index >= len(frameworks) {
				return fmt.Errorf("framework choice %d out of range", v.Index)
			}
			f := frameworks[v.Index]
			s.Answers.Framework = &f
			return nil
		},
	}
}

func variantSlot() Slot {
	return Slot{
		Name: "variant",
		Kind: KindSelect,
		Applies: func(s *State) (bool, error) {
			return s.Answers.Framework != nil && s.Answers.Framework.HasVariants(), nil
		},
		Message: constant("Select a variant:"),
		Choices: func(s *State) []string {
			var labels []string
			for _, v := range s.Answers.Framework.Variants {
				labels = append(labels, output.Colorize(v.Color, v.Display))
			}
			return labels
		},
		Store: func(s *State, v Value) error {
			variants := s.Answers.Framework.Variants
			if v.Index < 0 || v.Index >= len(variants) {
				return fmt.Errorf("variant choice %d out of range", v.Index)
			}
			s.Answers.Variant = variants[v.Index].ID
			return nil
		},
	}
}

func constant(msg string) func(*State) string {
	return func(*State) string { return msg }
}
