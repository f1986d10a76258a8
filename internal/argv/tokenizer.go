// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package argv

import "strings"

// Tokenizer builds argument vectors from command lines.
// The zero value uses DefaultChunk and no token limit.
type Tokenizer struct {
	Chunk     int // Initial capacity and growth increment. Zero means DefaultChunk.
	MaxTokens int // Upper bound on the token count. Zero means unlimited.
}

// NewTokenizer returns a Tokenizer with the given chunk and token limit.
func NewTokenizer(chunk, maxTokens int) (*Tokenizer, error) {
	if chunk <= 0 {
		return nil, ErrInvalidChunk
	}

	return &Tokenizer{Chunk: chunk, MaxTokens: maxTokens}, nil
}

// Tokenize splits line into tokens separated by Delimiters.
// A line made only of delimiters yields an empty vector.
func (t *Tokenizer) Tokenize(line string) (*Argv, error) {
	chunk := t.Chunk
	if chunk <= 0 {
		chunk = DefaultChunk
	}

	initial := chunk
	if t.MaxTokens > 0 && initial > t.MaxTokens {
		initial = t.MaxTokens
	}

	a := &Argv{
		tokens: make([]Token, 0, initial),
		chunk:  chunk,
		max:    t.MaxTokens,
	}

	start := -1

	for i := 0; i < len(line); i++ {
		if strings.IndexByte(Delimiters, line[i]) >= 0 {
			if start >= 0 {
				if err := a.push(Token{Text: line[start:i], Offset: start}); err != nil {
					return nil, err
				}

				start = -1
			}

			continue
		}

		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		if err := a.push(Token{Text: line[start:], Offset: start}); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Tokenize splits line using a zero-value Tokenizer.
func Tokenize(line string) (*Argv, error) {
	return (&Tokenizer{}).Tokenize(line)
}
