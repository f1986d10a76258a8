// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linereader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxLine is the default line limit in bytes, excluding the newline.
const DefaultMaxLine = 1024

var (
	// ErrLineTooLong is returned when a line exceeds the limit under PolicyReject.
	ErrLineTooLong = errors.New("line too long")
	// ErrUnknownPolicy is returned when parsing an unknown overlong policy name.
	ErrUnknownPolicy = errors.New("unknown overlong line policy")
)

// OverlongPolicy decides what happens to a line longer than the limit.
type OverlongPolicy int

const (
	// PolicyReject discards the whole line and returns ErrLineTooLong.
	PolicyReject OverlongPolicy = iota
	// PolicyReassemble keeps reading until the newline and returns the whole line.
	PolicyReassemble
)

func (p OverlongPolicy) String() string {
	switch p {
	case PolicyReject:
		return "reject"
	case PolicyReassemble:
		return "reassemble"
	default:
		return fmt.Sprintf("OverlongPolicy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name into an OverlongPolicy.
func ParsePolicy(s string) (OverlongPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reject":
		return PolicyReject, nil
	case "reassemble":
		return PolicyReassemble, nil
	default:
		return PolicyReject, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Reader reads lines from an underlying io.Reader.
// It is not safe for concurrent use.
type Reader struct {
	r      *bufio.Reader
	max    int
	policy OverlongPolicy
	sb     strings.Builder
}

// New creates a Reader. A non-positive maxLine uses DefaultMaxLine.
func New(r io.Reader, maxLine int, policy OverlongPolicy) *Reader {
	if maxLine <= 0 {
		maxLine = DefaultMaxLine
	}

	return &Reader{
		r:      bufio.NewReader(r),
		max:    maxLine,
		policy: policy,
	}
}

// ReadLine returns the next line without its trailing newline.
//
// A final line without a newline is returned normally; the following call returns io.EOF.
// io.EOF is only returned when no data at all was read.
// Under PolicyReject an overlong line is consumed up to and including its newline,
// and ErrLineTooLong is returned.
func (lr *Reader) ReadLine() (string, error) {
	lr.sb.Reset()

	overlong := false
	read := false

	for {
		b, err := lr.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				break
			}

			return "", err //nolint:wrapcheck
		}

		read = true

		if b == '\n' {
			break
		}

		if lr.sb.Len() >= lr.max && lr.policy == PolicyReject {
			overlong = true
			continue
		}

		lr.sb.WriteByte(b)
	}

	if overlong {
		lr.sb.Reset()
		return "", fmt.Errorf("%w: limit is %d bytes", ErrLineTooLong, lr.max)
	}

	return lr.sb.String(), nil
}
