// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package input

import (
	"context"
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned when an interrupt arrives while waiting for a line.
var ErrInterrupted = errors.New("read interrupted")

// Source reads one command line at a time.
type Source interface {
	// ReadLine shows prompt and blocks until a line is available.
	// A notification on interrupted ends the wait with ErrInterrupted.
	ReadLine(ctx context.Context, prompt string, interrupted <-chan struct{}) (string, error)
	// Close releases the source.
	Close() error
}

// Suspender is implemented by sources that keep the terminal in a mode of their
// own between reads. The shell calls Suspend before it starts a child and Resume
// once the child has finished.
type Suspender interface {
	Suspend() error
	Resume() error
}

// Interactive reports whether both in and out are terminals.
func Interactive(in, out *os.File) bool {
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}
