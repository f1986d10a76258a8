// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/cisfun/internal/config"
	"github.com/matt-FFFFFF/cisfun/internal/ctxlog"
	"github.com/matt-FFFFFF/cisfun/internal/input"
	"github.com/matt-FFFFFF/cisfun/internal/process"
	"github.com/matt-FFFFFF/cisfun/internal/shell"
	"github.com/urfave/cli/v3"
)

var (
	// ErrLogging is returned when the log settings can not be applied.
	ErrLogging = errors.New("failed to configure logging")

	// Standard files of the shell, allows mocking in test.
	stdin  = os.Stdin
	stdout = os.Stdout
	stderr = os.Stderr
)

// RunCmd runs the interactive shell. It is also the root command's default action.
var RunCmd = &cli.Command{
	Name:        "run",
	Usage:       "Run the interactive shell",
	Description: "Read commands from standard input and run each one until exit or end of input.",
	Action:      Action,
}

// Action configures logging, selects an input source and runs the shell.
func Action(ctx context.Context, cmd *cli.Command) error {
	settings, err := config.FromCommand(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ctx, err = withLogger(ctx, settings)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	src := newSource(ctx, settings)

	defer func() {
		if err := src.Close(); err != nil {
			ctxlog.Warn(ctx, "failed to close input", "error", err)
		}
	}()

	launcher := process.NewLauncher()
	launcher.Stdin, launcher.Stdout, launcher.Stderr = stdin, stdout, stderr

	opts := append(shell.FromSettings(settings),
		shell.WithOutput(stdout),
		shell.WithErrOutput(stderr),
	)

	sh := shell.New(src, launcher, opts...)
	if err := sh.Run(ctx); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ctxlog.Debug(ctx, "shell finished", "spawned", sh.Spawned())

	return nil
}

// withLogger replaces the context logger when the settings ask for a different
// format, and applies the log level if one is set.
func withLogger(ctx context.Context, settings *config.Settings) (context.Context, error) {
	if settings.LogLevel != "" {
		lvl, err := ctxlog.ParseLevel(settings.LogLevel)
		if err != nil {
			return ctx, fmt.Errorf("%w: %w", ErrLogging, err)
		}

		ctxlog.LevelVar.Set(lvl)
	}

	if settings.LogFormat == ctxlog.FormatPretty {
		return ctx, nil
	}

	logger, err := ctxlog.NewLogger(settings.LogFormat, stderr)
	if err != nil {
		return ctx, fmt.Errorf("%w: %w", ErrLogging, err)
	}

	return ctxlog.New(ctx, logger), nil
}

// newSource uses line editing when it is switched on, or when it is automatic
// and both standard input and output are terminals.
func newSource(ctx context.Context, settings *config.Settings) input.Source {
	editing := settings.LineEditing == config.LineEditingOn ||
		(settings.LineEditing == config.LineEditingAuto && input.Interactive(stdin, stdout))

	if editing {
		ctxlog.Debug(ctx, "input", "detail", "using line editing", "history", settings.HistoryFile)

		return input.NewLiner(ctx, input.LinerOptions{
			MaxLine:     settings.LineMax,
			Policy:      settings.Policy(),
			HistoryFile: settings.HistoryFile,
		})
	}

	ctxlog.Debug(ctx, "input", "detail", "reading plain lines")

	return input.NewPlain(stdin, stdout, settings.LineMax, settings.Policy())
}
