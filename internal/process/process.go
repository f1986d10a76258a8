// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package process

import (
	"context"
	"errors"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/matt-FFFFFF/cisfun/internal/ctxlog"
)

// FailureExitCode is recorded for a command whose program could not be loaded.
const FailureExitCode = 1

var (
	// ErrCouldNotStartProcess is returned when the operating system could not create a process.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrImageReplace is set on a Result when the program could not be loaded into the new process.
	ErrImageReplace = errors.New("could not execute program")
	// ErrWait is set on a Result when waiting for the process failed.
	ErrWait = errors.New("failed to wait for process")
	// ErrEmptyArgv is returned when there is no program to run.
	ErrEmptyArgv = errors.New("empty argument vector")
)

// startProcess allows stubbing in tests.
var startProcess = os.StartProcess

// Result is the outcome of one command.
type Result struct {
	Name     string        // Program name as given (argv[0]).
	Pid      int           // Process id, zero if the program could not be loaded.
	ExitCode int           // Exit code of the process, -1 if it was terminated by a signal.
	Error    error         // ErrImageReplace or ErrWait joined with the cause, if any.
	Duration time.Duration // Wall time from start to exit.
}

// Success reports whether the command exited with code zero and no error.
func (r *Result) Success() bool {
	return r != nil && r.Error == nil && r.ExitCode == 0
}

// Launcher starts programs with a fixed set of standard files and working directory.
type Launcher struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
	Dir    string // Working directory, empty for the current one.
}

// NewLauncher returns a Launcher whose children share this process's standard files.
func NewLauncher() *Launcher {
	return &Launcher{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Start creates a process running argv[0] with argv as its argument vector and
// env as its environment. argv[0] is handed to the operating system unmodified;
// there is no PATH search.
//
// If the program can not be loaded the returned Child is already finished and
// its Result carries ErrImageReplace. A non-nil error means no process could be
// created at all.
func (l *Launcher) Start(ctx context.Context, argv, env []string) (*Child, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyArgv
	}

	logger := ctxlog.Logger(ctx).With("name", argv[0])
	logger.Debug("starting process", "args", argv[1:], "cwd", l.Dir)

	start := time.Now()

	ps, err := startProcess(argv[0], argv, &os.ProcAttr{
		Dir:   l.Dir,
		Env:   env,
		Files: []*os.File{l.Stdin, l.Stdout, l.Stderr},
	})
	if err != nil {
		if isCreateFailure(err) {
			logger.Error("process creation failed", "error", err)
			return nil, errors.Join(ErrCouldNotStartProcess, err)
		}

		logger.Debug("program could not be loaded", "error", err)

		return Finished(&Result{
			Name:     argv[0],
			ExitCode: FailureExitCode,
			Error:    errors.Join(ErrImageReplace, err),
			Duration: time.Since(start),
		}), nil
	}

	logger.Debug("process started", "pid", ps.Pid)

	return &Child{
		ps:    ps,
		res:   &Result{Name: argv[0], Pid: ps.Pid},
		start: start,
	}, nil
}

// Child is a started command.
type Child struct {
	ps    *os.Process
	res   *Result
	start time.Time
	once  sync.Once
}

// Finished returns a Child that has already completed with res.
func Finished(res *Result) *Child {
	return &Child{res: res}
}

// Pid returns the process id, or zero if no process is running the program.
func (c *Child) Pid() int {
	if c.ps == nil {
		return 0
	}

	return c.ps.Pid
}

// Wait blocks until the child exits and returns its Result.
// It does not cancel the child when ctx is done; ctx only supplies the logger.
// Calling Wait more than once returns the same Result.
func (c *Child) Wait(ctx context.Context) *Result {
	c.once.Do(func() {
		if c.ps == nil {
			return
		}

		logger := ctxlog.Logger(ctx).With("name", c.res.Name, "pid", c.ps.Pid)
		logger.Debug("waiting for process to finish")

		state, err := c.ps.Wait()
		c.res.Duration = time.Since(c.start)

		if err != nil {
			c.res.ExitCode = -1
			c.res.Error = errors.Join(ErrWait, err)
			logger.Warn("wait failed", "error", err)

			return
		}

		c.res.ExitCode = state.ExitCode()
		logger.Debug("process finished", "state", state.String(), "exitCode", c.res.ExitCode, "duration", c.res.Duration)
	})

	return c.res
}

// isCreateFailure reports whether err means no process was created.
// Every other start error is the program failing to load.
func isCreateFailure(err error) bool {
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.ENOMEM)
}

// Cause returns the operating system's reason for err, without the wrapping
// added by Start or os.StartProcess.
func Cause(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}

	return err
}
