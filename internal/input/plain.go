// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package input

import (
	"context"
	"io"

	"github.com/matt-FFFFFF/cisfun/internal/linereader"
)

var _ Source = (*Plain)(nil)

type lineResult struct {
	line string
	err  error
}

// Plain reads lines from an io.Reader and writes prompts to an io.Writer.
// It is driven by a single goroutine.
type Plain struct {
	r       io.Reader
	out     io.Writer
	lr      *linereader.Reader
	pending chan lineResult // outstanding read, nil when none
}

// NewPlain creates a Plain source.
func NewPlain(r io.Reader, out io.Writer, maxLine int, policy linereader.OverlongPolicy) *Plain {
	return &Plain{
		r:   r,
		out: out,
		lr:  linereader.New(r, maxLine, policy),
	}
}

// ReadLine implements Source.
// An interrupted read stays outstanding and is picked up by the next call.
func (p *Plain) ReadLine(ctx context.Context, prompt string, interrupted <-chan struct{}) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err //nolint:wrapcheck
	}

	if p.pending == nil {
		ch := make(chan lineResult, 1)

		go func() {
			line, err := p.lr.ReadLine()
			ch <- lineResult{line: line, err: err}
		}()

		p.pending = ch
	}

	for {
		select {
		case res := <-p.pending:
			p.pending = nil
			return res.line, res.err
		case _, ok := <-interrupted:
			if !ok {
				interrupted = nil
				continue
			}

			return "", ErrInterrupted
		case <-ctx.Done():
			return "", ctx.Err() //nolint:wrapcheck
		}
	}
}

// Close implements Source. It closes the underlying reader if it is an io.Closer,
// which ends a read left outstanding by an interrupt or a cancelled context.
func (p *Plain) Close() error {
	if c, ok := p.r.(io.Closer); ok {
		return c.Close() //nolint:wrapcheck
	}

	return nil
}
