package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/withbatteries/create-batteries/internal/config"
	"github.com/withbatteries/create-batteries/internal/output"
	"github.com/withbatteries/create-batteries/internal/pkgmanager"
	"github.com/withbatteries/create-batteries/internal/prompt"
)

// scriptedDriver answers prompts from fixed lists.
type scriptedDriver struct {
	inputs    []string
	confirm   []bool
	selectIdx []int
	asked     []string
}

func (s *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	s.asked = append(s.asked, cfg.Message)
	if len(s.inputs) == 0 {
		return "", prompt.ErrAborted
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	return v, nil
}

func (s *scriptedDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	s.asked = append(s.asked, cfg.Message)
	if len(s.confirm) == 0 {
		return false, prompt.ErrAborted
	}
	v := s.confirm[0]
	s.confirm = s.confirm[1:]
	return v, nil
}

func (s *scriptedDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	s.asked = append(s.asked, cfg.Message)
	if len(s.selectIdx) == 0 {
		return 0, errors.New("no select scripted")
	}
	v := s.selectIdx[0]
	s.selectIdx = s.selectIdx[1:]
	return v, nil
}

// executeRoot runs the root command with an isolated config path and
// returns what it printed to stdout.
func executeRoot(t *testing.T, opts Options, args ...string) (string, error) {
	t.Helper()
	return executeRootWithUA(t, "", opts, args...)
}

// executeRootWithUA is executeRoot with a package manager user agent.
func executeRootWithUA(t *testing.T, userAgent string, opts Options, args ...string) (string, error) {
	t.Helper()

	t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv(pkgmanager.UserAgentEnv, userAgent)

	var buf bytes.Buffer
	prev := output.SetStdout(&buf)
	t.Cleanup(func() { output.SetStdout(prev) })

	cmd := NewRootCmdWithOptions(opts)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	return buf.String(), err
}
