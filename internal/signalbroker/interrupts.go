// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"io"
	"os"

	"github.com/matt-FFFFFF/cisfun/internal/ctxlog"
)

// Interrupts handles every signal received on sigCh by writing a single newline
// to w and posting a notification on the returned channel.
//
// The returned channel has room for one pending notification; further signals
// arriving before it is drained still write their newline but do not queue.
// The handler stops when ctx is done or sigCh is closed, and then closes the
// returned channel.
func Interrupts(ctx context.Context, sigCh <-chan os.Signal, w io.Writer) <-chan struct{} {
	notify := make(chan struct{}, 1)

	go func() {
		defer close(notify)

		for {
			select {
			case <-ctx.Done():
				return
			case sig, ok := <-sigCh:
				if !ok {
					return
				}

				ctxlog.Debug(ctx, "interrupt", "signal", sig.String())

				if _, err := io.WriteString(w, "\n"); err != nil {
					ctxlog.Warn(ctx, "interrupt", "detail", "failed to write newline", "error", err)
				}

				select {
				case notify <- struct{}{}:
				default:
				}
			}
		}
	}()

	return notify
}

// Drain discards any pending notification on ch without blocking.
// It reports whether one was discarded.
func Drain(ch <-chan struct{}) bool {
	drained := false

	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return drained
			}

			drained = true
		default:
			return drained
		}
	}
}
