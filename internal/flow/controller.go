package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/withbatteries/create-batteries/internal/output"
	"github.com/withbatteries/create-batteries/internal/prompt"
	"github.com/withbatteries/create-batteries/internal/templates"
)

// Controller asks the applicable slots in order.
type Controller struct {
	driver prompt.Driver
	slots  []Slot
	state  *State
}

// New creates a controller for the default question sequence.
func New(driver prompt.Driver, c Context) *Controller {
	return NewWithSlots(driver, c, Slots())
}

// NewWithSlots creates a controller for a custom question sequence.
func NewWithSlots(driver prompt.Driver, c Context, slots []Slot) *Controller {
	target := FormatTargetDir(c.TargetDirArg)
	if target == "" {
		target = c.defaultTarget()
	}
	return &Controller{
		driver: driver,
		slots:  slots,
		state: &State{
			Context: c,
			Target:  NewTargetDir(target),
			Answers: &Answers{},
		},
	}
}

// Run evaluates every slot and returns the collected answers. It returns a
// *CancelledError when the user declines to overwrite, aborts a prompt or
// ctx is done between slots.
func (c *Controller) Run(ctx context.Context) (Answers, error) {
	for _, slot := range c.slots {
		if err := ctx.Err(); err != nil {
			return Answers{}, &CancelledError{Slot: slot.Name, Cause: err}
		}

		if slot.Applies != nil {
			ok, err := slot.Applies(c.state)
			if err != nil {
				return Answers{}, err
			}
			if !ok {
				output.Debug("skipping question", "slot", slot.Name)
				continue
			}
		}

		if err := c.evaluate(ctx, slot); err != nil {
			return Answers{}, err
		}
	}

	answers := *c.state.Answers
	output.Debug("collected answers",
		"target", c.state.Target.Get(),
		"overwrite", answers.Overwrite,
		"package", answers.PackageName,
		"template", answers.TemplateID(c.state.Context.TemplateHint))
	return answers, nil
}

// TargetDir returns the live target directory.
func (c *Controller) TargetDir() string {
	return c.state.Target.Get()
}

// Root returns the absolute target directory.
func (c *Controller) Root() string {
	return c.state.Root()
}

// ProjectName returns the name derived from the target directory.
func (c *Controller) ProjectName() string {
	return c.state.ProjectName()
}

// PackageName returns the answered package name, or the project name when
// the question was skipped.
func (c *Controller) PackageName() string {
	if c.state.Answers.PackageName != "" {
		return c.state.Answers.PackageName
	}
	return c.state.ProjectName()
}

func (c *Controller) evaluate(ctx context.Context, slot Slot) error {
	s := c.state

	switch slot.Kind {
	case KindCheckpoint:
		if slot.Check == nil {
			return nil
		}
		return slot.Check(s)

	case KindText:
		cfg := prompt.InputConfig{
			Message:   slot.Message(s),
			Validator: slot.Validate,
		}
		if slot.Default != nil {
			cfg.Default = slot.Default(s)
		}
		for {
			answer, err := c.driver.Input(ctx, cfg)
			if err != nil {
				return askError(slot, err)
			}
			if slot.Validate != nil {
				if verr := slot.Validate(answer); verr != nil {
					output.Warn(verr.Error())
					continue
				}
			}
			return slot.Store(s, Value{Text: answer})
		}

	case KindConfirm:
		ok, err := c.driver.Confirm(ctx, prompt.ConfirmConfig{Message: slot.Message(s)})
		if err != nil {
			return askError(slot, err)
		}
		return slot.Store(s, Value{Confirmed: ok})

	case KindSelect:
		idx, err := c.driver.Select(ctx, prompt.SelectConfig{
			Message: slot.Message(s),
			Options: slot.Choices(s),
		})
		if err != nil {
			return askError(slot, err)
		}
		return slot.Store(s, Value{Index: idx})
	}

	return fmt.Errorf("slot %s: unknown kind %d", slot.Name, slot.Kind)
}

func askError(slot Slot, err error) error {
	if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &CancelledError{Slot: slot.Name, Cause: err}
	}
	return fmt.Errorf("asking %s: %w", slot.Name, err)
}

// Resolve returns the template chosen by answers and hint. A completed run
// always resolves to a valid template.
func Resolve(answers Answers, hint string) (string, error) {
	id := answers.TemplateID(hint)
	if !templates.IsValidTemplateID(id) {
		return "", fmt.Errorf("no valid template resolved (got %q)", id)
	}
	return id, nil
}
