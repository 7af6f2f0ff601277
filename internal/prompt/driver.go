// Package prompt provides the terminal prompts asked while collecting
// project options.
package prompt

import (
	"context"
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single-choice prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// Driver asks one question per call and blocks until it is answered.
// Implementations return ErrAborted when the user gives up.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

// SurveyDriver is the terminal Driver.
type SurveyDriver struct {
	opts []survey.AskOpt
}

// SurveyOption configures a SurveyDriver.
type SurveyOption func(*SurveyDriver)

// WithStdio routes prompts through the given terminal streams instead of
// the process stdio.
func WithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) SurveyOption {
	return func(d *SurveyDriver) {
		d.opts = append(d.opts, survey.WithStdio(in, out, errOut))
	}
}

// NewSurveyDriver creates a Driver backed by survey.
func NewSurveyDriver(opts ...SurveyOption) *SurveyDriver {
	d := &SurveyDriver{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Input asks for free text. A non-nil Validator makes survey re-ask until
// the answer passes.
func (d *SurveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	p := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	opts := d.askOpts()
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(p, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *SurveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	p := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(p, &out, d.askOpts()...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

// Select returns the index of the chosen option.
func (d *SurveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out int
	p := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		p.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex > 0 && cfg.DefaultIndex < len(cfg.Options) {
		p.Default = cfg.DefaultIndex
	}
	if err := survey.AskOne(p, &out, d.askOpts()...); err != nil {
		return 0, translateSurveyErr(err)
	}
	return out, nil
}

func (d *SurveyDriver) askOpts() []survey.AskOpt {
	opts := make([]survey.AskOpt, len(d.opts))
	copy(opts, d.opts)
	return opts
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return err
}
