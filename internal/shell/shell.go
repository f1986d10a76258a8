// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/cisfun/internal/argv"
	"github.com/matt-FFFFFF/cisfun/internal/config"
	"github.com/matt-FFFFFF/cisfun/internal/ctxlog"
	"github.com/matt-FFFFFF/cisfun/internal/input"
	"github.com/matt-FFFFFF/cisfun/internal/linereader"
	"github.com/matt-FFFFFF/cisfun/internal/process"
	"github.com/matt-FFFFFF/cisfun/internal/signalbroker"
)

const (
	// ExitBuiltin is the only command the shell interprets itself.
	ExitBuiltin = "exit"
	// maxReadErrors is how many consecutive unexpected read errors are retried.
	maxReadErrors = 5
	defaultName   = "cisfun"
)

var (
	// ErrSpawn is returned by Run when no process could be created for a command.
	ErrSpawn = errors.New("fork failed")
	// ErrRead is returned by Run when reading input keeps failing.
	ErrRead = errors.New("failed to read input")
)

// Launcher creates child processes.
type Launcher interface {
	Start(ctx context.Context, argv, env []string) (*process.Child, error)
}

// Shell is one interactive session.
type Shell struct {
	name      string
	prompt    string
	source    input.Source
	tokenizer *argv.Tokenizer
	launcher  Launcher
	env       []string
	out       io.Writer
	errOut    io.Writer
	sigCh     chan os.Signal // Interrupt signals, allows mocking in test.

	last    *process.Result
	spawned int
}

// Option configures a Shell.
type Option func(*Shell)

// WithPrompt sets the prompt string.
func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

// WithTokenizer sets the tokenizer used to split lines.
func WithTokenizer(t *argv.Tokenizer) Option {
	return func(s *Shell) {
		s.tokenizer = t
	}
}

// WithEnv sets the environment passed to every child.
func WithEnv(env []string) Option {
	return func(s *Shell) {
		s.env = env
	}
}

// WithOutput sets where newlines for interrupts and end of input are written.
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.out = w
	}
}

// WithErrOutput sets where diagnostics are written.
func WithErrOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.errOut = w
	}
}

// WithName sets the name used to prefix the shell's own diagnostics.
func WithName(name string) Option {
	return func(s *Shell) {
		s.name = name
	}
}

// FromSettings returns the options that apply settings to a Shell.
func FromSettings(settings *config.Settings) []Option {
	return []Option{
		WithPrompt(settings.Prompt),
		WithTokenizer(settings.Tokenizer()),
		WithEnv(settings.Env),
	}
}

// New creates a Shell reading from source and starting commands with launcher.
func New(source input.Source, launcher Launcher, opts ...Option) *Shell {
	s := &Shell{
		name:      defaultName,
		prompt:    config.DefaultPrompt,
		source:    source,
		tokenizer: &argv.Tokenizer{},
		launcher:  launcher,
		env:       os.Environ(),
		out:       os.Stdout,
		errOut:    os.Stderr,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// LastResult returns the result of the most recent command, or nil.
func (s *Shell) LastResult() *process.Result {
	return s.last
}

// Spawned returns the number of commands started so far.
func (s *Shell) Spawned() int {
	return s.spawned
}

// Run drives the loop until end of input, the exit built-in or ctx is done,
// and then returns nil. It returns an error only when a process could not be
// created or input could not be read.
func (s *Shell) Run(ctx context.Context) error {
	logger := ctxlog.Logger(ctx).With("component", "shell")

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := s.sigCh
	if sigCh == nil {
		sigCh = signalbroker.New(ctx, os.Interrupt)
		defer signalbroker.Stop(sigCh)
	}

	interrupts := signalbroker.Interrupts(runCtx, sigCh, s.out)

	var (
		state      = StatePrompt
		line       string
		args       *argv.Argv
		child      *process.Child
		readErrors int
	)

	for {
		logger.Debug("state", "state", state.String())

		switch state {
		case StatePrompt:
			args, child = nil, nil

			if ctx.Err() != nil {
				state = StateExit
				continue
			}

			signalbroker.Drain(interrupts)

			state = StateRead

		case StateRead:
			var err error

			line, err = s.source.ReadLine(ctx, s.prompt, interrupts)
			if err == nil {
				readErrors = 0
				state = StateParse

				continue
			}

			var unexpected bool

			state, unexpected = s.readFailed(ctx, err)
			if !unexpected {
				continue
			}

			readErrors++
			if readErrors >= maxReadErrors {
				return errors.Join(ErrRead, err)
			}

		case StateParse:
			var err error

			args, err = s.tokenizer.Tokenize(line)
			if err != nil {
				s.reportf("%s: %v", s.name, err)

				state = StatePrompt

				continue
			}

			state = StateDispatch

		case StateDispatch:
			name, _ := args.Name()

			switch {
			case args.Empty():
				state = StatePrompt
			case name == ExitBuiltin:
				logger.Debug("exit built-in")

				state = StateExit
			default:
				state = StateChild
			}

		case StateChild:
			var err error

			s.suspendInput(ctx)

			child, err = s.launcher.Start(ctx, args.Strings(), s.env)
			if err != nil {
				s.resumeInput(ctx)
				s.reportf("%s: %v", ErrSpawn, process.Cause(err))

				return errors.Join(ErrSpawn, err)
			}

			logger.Debug("command started", "command", args.String(), "pid", child.Pid())

			s.spawned++
			state = StateWait

		case StateWait:
			res := child.Wait(ctx)
			s.last = res

			s.resumeInput(ctx)

			if errors.Is(res.Error, process.ErrImageReplace) {
				s.reportf("%s: %v", res.Name, process.Cause(res.Error))
			}

			logger.Debug("command finished",
				"name", res.Name, "pid", res.Pid, "success", res.Success(), "exitCode", res.ExitCode, "error", res.Error)

			state = StatePrompt

		case StateExit:
			return nil
		}
	}
}

// readFailed maps a read error to the next state. The second result is true
// for errors that are neither end of input, an interrupt nor an overlong line.
func (s *Shell) readFailed(ctx context.Context, err error) (State, bool) {
	switch {
	case errors.Is(err, io.EOF):
		_, _ = io.WriteString(s.out, "\n")
		return StateExit, false
	case errors.Is(err, input.ErrInterrupted):
		return StatePrompt, false
	case ctx.Err() != nil:
		return StateExit, false
	case errors.Is(err, linereader.ErrLineTooLong):
		s.reportf("%s: %v", s.name, err)
		return StatePrompt, false
	default:
		ctxlog.Warn(ctx, "read failed", "error", err)
		s.reportf("%s: %v", s.name, err)

		return StatePrompt, true
	}
}

// suspendInput hands the terminal back to its original mode before a child starts.
func (s *Shell) suspendInput(ctx context.Context) {
	if sp, ok := s.source.(input.Suspender); ok {
		if err := sp.Suspend(); err != nil {
			ctxlog.Warn(ctx, "could not restore terminal mode for child", "error", err)
		}
	}
}

// resumeInput returns the terminal to the input source after a child has finished.
func (s *Shell) resumeInput(ctx context.Context) {
	if sp, ok := s.source.(input.Suspender); ok {
		if err := sp.Resume(); err != nil {
			ctxlog.Warn(ctx, "could not restore line editing mode", "error", err)
		}
	}
}

func (s *Shell) reportf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.errOut, format+"\n", args...)
}
