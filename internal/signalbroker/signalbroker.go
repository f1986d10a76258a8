// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker routes operating system signals to the shell.
//
// Interrupts (Ctrl+C) never terminate the shell: Interrupts writes a newline and
// tells the execution loop to show the prompt again. Termination signals
// (SIGTERM, SIGQUIT) are handled by Watch, which cancels a context on the second
// signal of the same type.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/cisfun/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// New registers a buffered channel for the given signals.
// With no signals it listens for SIGTERM and SIGQUIT.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop unregisters ch. Signals it was catching regain their default behaviour.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
}
