/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/

// Package executor runs the external tools xmsconan drives (conan, cmake)
// with live console output, context cancellation, and a dry-run mode that
// prints the command line instead of executing it.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	xerrors "github.com/aquaveo/xmsconan/pkg/errors"
)

// ContextKeyTool names the external program in structured error context.
const ContextKeyTool = "tool"

// Result holds the outcome of a single tool invocation.
type Result struct {
	Command  string        `json:"command" yaml:"command"`
	ExitCode int           `json:"exit_code" yaml:"exit_code"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Options configures how commands are executed.
type Options struct {
	// Stdout and Stderr receive the tool's output. Both default to the
	// process streams so conan and cmake progress stays visible.
	Stdout io.Writer
	Stderr io.Writer

	// WorkingDir is the directory the tool runs in. Empty means inherit.
	WorkingDir string

	// Env holds variables appended to the inherited environment.
	Env map[string]string

	// DryRun prints the command line to Stdout without executing.
	DryRun bool
}

// Option mutates execution options.
type Option func(*Options)

// WithStdout sets the writer receiving tool stdout.
func WithStdout(w io.Writer) Option {
	return func(o *Options) {
		o.Stdout = w
	}
}

// WithStderr sets the writer receiving tool stderr.
func WithStderr(w io.Writer) Option {
	return func(o *Options) {
		o.Stderr = w
	}
}

// WithWorkingDir sets the directory commands run in.
func WithWorkingDir(dir string) Option {
	return func(o *Options) {
		o.WorkingDir = dir
	}
}

// WithEnv adds environment variables on top of the inherited environment.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		if o.Env == nil {
			o.Env = make(map[string]string, len(env))
		}
		for k, v := range env {
			o.Env[k] = v
		}
	}
}

// WithEnvVar adds a single environment variable.
func WithEnvVar(key, value string) Option {
	return func(o *Options) {
		if o.Env == nil {
			o.Env = make(map[string]string, 1)
		}
		o.Env[key] = value
	}
}

// WithDryRun toggles dry-run mode.
func WithDryRun(dryRun bool) Option {
	return func(o *Options) {
		o.DryRun = dryRun
	}
}

// Executor runs external tools with a fixed base configuration.
type Executor struct {
	options Options
}

// New creates an executor. Output defaults to os.Stdout and os.Stderr.
func New(opts ...Option) *Executor {
	options := Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Executor{options: options}
}

// Run executes program with args. Per-call options are applied on top of the
// executor's base configuration. The returned result is populated even on
// failure so callers can report the exit code.
func (e *Executor) Run(ctx context.Context, program string, args ...string) (*Result, error) {
	return e.RunWith(ctx, program, args, nil)
}

// RunWith executes program with args and per-call option overrides.
func (e *Executor) RunWith(ctx context.Context, program string, args []string, opts []Option) (*Result, error) {
	options := e.options
	for _, opt := range opts {
		opt(&options)
	}

	command := strings.Join(append([]string{program}, args...), " ")
	result := &Result{Command: command}

	if options.DryRun {
		fmt.Fprintln(options.Stdout, command)
		return result, nil
	}

	if _, err := exec.LookPath(program); err != nil {
		return result, xerrors.WrapWithContext(xerrors.ErrCodeExternalTool,
			fmt.Sprintf("%s not found in PATH", program), err, map[string]any{
				ContextKeyTool: program,
			})
	}

	slog.Debug("running external tool", "command", command, "dir", options.WorkingDir)

	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdout = options.Stdout
	cmd.Stderr = options.Stderr
	if options.WorkingDir != "" {
		cmd.Dir = options.WorkingDir
	}
	if len(options.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range options.Env {
			cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
		}
	}

	start := time.Now()
	err := cmd.Run()
	result.Duration = time.Since(start)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, xerrors.NewWithContext(xerrors.ErrCodeExternalTool,
			fmt.Sprintf("%s exited with code %d", program, result.ExitCode), map[string]any{
				ContextKeyTool:             program,
				xerrors.ContextKeyExitCode: result.ExitCode,
			})
	}

	result.ExitCode = -1
	return result, xerrors.WrapWithContext(xerrors.ErrCodeExternalTool,
		fmt.Sprintf("%s failed to run", program), err, map[string]any{
			ContextKeyTool: program,
		})
}
