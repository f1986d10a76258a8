// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matt-FFFFFF/cisfun/internal/ctxlog"
	"github.com/matt-FFFFFF/cisfun/internal/linereader"
	"github.com/peterh/liner"
	"github.com/spf13/afero"
)

var (
	_ Source    = (*Liner)(nil)
	_ Suspender = (*Liner)(nil)
)

// editor is the part of *liner.State used by Liner.
type editor interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
	SetCtrlCAborts(aborts bool)
	Close() error
}

var (
	// newEditor takes over the terminal, allows mocking in test.
	newEditor = func() editor {
		return liner.NewLiner()
	}
	// terminalMode captures the current terminal mode, allows mocking in test.
	terminalMode = liner.TerminalMode
	// signalKeys switches signal generation by Ctrl+C on standard input on or off.
	signalKeys = func(enabled bool) error {
		return setSignalKeys(int(os.Stdin.Fd()), enabled)
	}
)

// LinerOptions configures a Liner source.
type LinerOptions struct {
	MaxLine     int                       // Line limit in bytes.
	Policy      linereader.OverlongPolicy // What to do with longer lines.
	HistoryFile string                    // Optional file history is loaded from and saved to.
}

// Liner reads lines from the terminal with editing and history.
//
// liner keeps the terminal in its own line mode for the whole session. Suspend
// puts back the mode the terminal had before, so children see a normal terminal,
// and Resume returns to line mode.
type Liner struct {
	editor editor
	opts   LinerOptions
	fs     afero.Fs
	cooked liner.ModeApplier // mode before liner took over, nil when not a terminal
	line   liner.ModeApplier // liner's mode
}

// NewLiner takes over the terminal and loads history, if configured.
// A history file that can not be read is logged and ignored.
func NewLiner(ctx context.Context, opts LinerOptions) *Liner {
	if opts.MaxLine <= 0 {
		opts.MaxLine = linereader.DefaultMaxLine
	}

	cooked, err := terminalMode()

	ed := newEditor()
	ed.SetCtrlCAborts(true)

	l := &Liner{
		editor: ed,
		opts:   opts,
		fs:     FsFactory(),
	}

	if err == nil {
		l.line, err = terminalMode()
	}

	if err != nil {
		ctxlog.Debug(ctx, "input", "detail", "terminal mode not available", "error", err)
		l.line = nil
	} else {
		l.cooked = cooked
	}

	if opts.HistoryFile != "" {
		n, err := loadHistory(l.fs, opts.HistoryFile, ed)
		if err != nil {
			ctxlog.Warn(ctx, "history", "detail", "could not load history", "file", opts.HistoryFile, "error", err)
		} else {
			ctxlog.Debug(ctx, "history", "detail", "loaded history", "file", opts.HistoryFile, "entries", n)
		}
	}

	return l
}

// ReadLine implements Source.
//
// While the prompt is shown Ctrl+C is delivered to liner as a key instead of a
// signal. liner echoes it with a newline and ReadLine returns ErrInterrupted.
func (l *Liner) ReadLine(ctx context.Context, prompt string, _ <-chan struct{}) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err //nolint:wrapcheck
	}

	if l.line != nil {
		if err := signalKeys(false); err != nil {
			ctxlog.Debug(ctx, "input", "detail", "could not disable signal keys", "error", err)
		}

		defer func() {
			if err := signalKeys(true); err != nil {
				ctxlog.Warn(ctx, "input", "detail", "could not enable signal keys", "error", err)
			}
		}()
	}

	line, err := l.editor.Prompt(prompt)

	switch {
	case errors.Is(err, liner.ErrPromptAborted):
		return "", ErrInterrupted
	case err != nil:
		return "", err //nolint:wrapcheck
	}

	if len(line) > l.opts.MaxLine && l.opts.Policy == linereader.PolicyReject {
		return "", fmt.Errorf("%w: limit is %d bytes", linereader.ErrLineTooLong, l.opts.MaxLine)
	}

	if strings.TrimSpace(line) != "" {
		l.editor.AppendHistory(line)
	}

	return line, nil
}

// Suspend implements Suspender by restoring the terminal mode from before NewLiner.
func (l *Liner) Suspend() error {
	if l.cooked == nil {
		return nil
	}

	return l.cooked.ApplyMode() //nolint:wrapcheck
}

// Resume implements Suspender by returning the terminal to liner's mode.
func (l *Liner) Resume() error {
	if l.line == nil {
		return nil
	}

	return l.line.ApplyMode() //nolint:wrapcheck
}

// Close saves history, if configured, and restores the terminal.
func (l *Liner) Close() error {
	var saveErr error

	if l.opts.HistoryFile != "" {
		_, saveErr = saveHistory(l.fs, l.opts.HistoryFile, l.editor)
	}

	return errors.Join(saveErr, l.editor.Close())
}
