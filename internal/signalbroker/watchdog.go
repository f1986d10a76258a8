// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/cisfun/internal/ctxlog"
)

// Watch monitors the signal channel for termination signals.
// The first signal of a type is logged; the second of the same type closes sigCh and cancels the context.
// Watch returns when sigCh is closed or ctx is done.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, ok := seen[sig]; ok {
				ctxlog.Warn(ctx, "watchdog", "detail", "received second signal of type, exiting after current command", "signal", sig.String())
				Stop(sigCh)
				close(sigCh)
				cancel()

				return
			}

			ctxlog.Warn(ctx, "watchdog", "detail", "received first signal of type, send again to exit", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
