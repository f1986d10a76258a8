// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package argv

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Delimiters is the set of bytes that separate tokens: space, tab, carriage return, newline and bell.
	Delimiters = " \t\r\n\a"
	// DefaultChunk is the initial capacity of a vector and the amount it grows by.
	DefaultChunk = 64
	// DefaultMaxTokens is the largest number of tokens a vector may hold.
	DefaultMaxTokens = 65536
)

var (
	// ErrTooManyTokens is returned when growing the vector would exceed the token limit.
	ErrTooManyTokens = errors.New("too many arguments")
	// ErrInvalidChunk is returned when the growth chunk is not positive.
	ErrInvalidChunk = errors.New("argument vector chunk must be positive")
)

// Token is a single word of a command line.
type Token struct {
	Text   string // The token text, unchanged from the line.
	Offset int    // Byte offset of the first character of the token in the line.
}

// Argv is an ordered argument vector.
type Argv struct {
	tokens []Token
	chunk  int
	max    int
}

// Len returns the number of tokens.
func (a *Argv) Len() int {
	if a == nil {
		return 0
	}

	return len(a.tokens)
}

// Cap returns the number of slots allocated for tokens.
func (a *Argv) Cap() int {
	if a == nil {
		return 0
	}

	return cap(a.tokens)
}

// At returns the token at index i.
// The second return value is false for the sentinel slot at Len() and for any index out of range.
func (a *Argv) At(i int) (Token, bool) {
	if a == nil || i < 0 || i >= len(a.tokens) {
		return Token{}, false
	}

	return a.tokens[i], true
}

// Name returns the first token, which names the program to run.
// It returns false when the vector is empty.
func (a *Argv) Name() (string, bool) {
	t, ok := a.At(0)
	return t.Text, ok
}

// Empty reports whether the vector holds no tokens.
func (a *Argv) Empty() bool {
	return a.Len() == 0
}

// Strings returns a copy of the token texts, suitable for passing as a process argv.
func (a *Argv) Strings() []string {
	out := make([]string, a.Len())
	for i := range out {
		out[i] = a.tokens[i].Text
	}

	return out
}

// String returns the tokens joined by a single space.
func (a *Argv) String() string {
	return strings.Join(a.Strings(), " ")
}

func (a *Argv) push(t Token) error {
	if len(a.tokens) == cap(a.tokens) {
		next := cap(a.tokens) + a.chunk
		if a.max > 0 && next > a.max {
			if len(a.tokens) >= a.max {
				return fmt.Errorf("%w: limit is %d", ErrTooManyTokens, a.max)
			}

			next = a.max
		}

		grown := make([]Token, len(a.tokens), next)
		copy(grown, a.tokens)
		a.tokens = grown
	}

	a.tokens = append(a.tokens, t)

	return nil
}
