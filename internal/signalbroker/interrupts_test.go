// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestInterrupts_WritesNewlineAndNotifies(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	out := &syncBuffer{}
	notify := Interrupts(ctx, sigCh, out)

	sigCh <- os.Interrupt

	select {
	case <-notify:
	case <-time.After(time.Second):
		t.Fatal("expected an interrupt notification")
	}

	assert.Equal(t, "\n", out.String())

	close(sigCh)

	_, ok := <-notify
	assert.False(t, ok, "notification channel should close with the signal channel")
}

func TestInterrupts_CoalescesPendingNotifications(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal)
	out := &syncBuffer{}
	notify := Interrupts(ctx, sigCh, out)

	sigCh <- os.Interrupt
	sigCh <- os.Interrupt
	sigCh <- os.Interrupt

	assert.Eventually(t, func() bool { return out.String() == "\n\n\n" }, time.Second, 5*time.Millisecond)
	require.True(t, Drain(notify))
	assert.False(t, Drain(notify), "only one notification is kept")

	cancel()

	for range notify {
	}
}

func TestDrain_Empty(t *testing.T) {
	ch := make(chan struct{}, 1)
	assert.False(t, Drain(ch))

	close(ch)
	assert.False(t, Drain(ch))
}

func TestNew_RegistersChannel(t *testing.T) {
	ch := New(context.Background(), os.Interrupt)
	defer Stop(ch)

	assert.Equal(t, 1, cap(ch))
}
