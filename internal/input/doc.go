// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package input provides the sources the shell reads command lines from.
//
// Plain writes the prompt itself and reads bounded lines from any io.Reader. A
// read is only started when the shell asks for a line, so input typed while a
// child runs stays with the child. Liner offers line editing and history on a
// terminal using github.com/peterh/liner. It implements Suspender so children
// run with the terminal mode the shell was started with.
//
// A Plain read that is still outstanding when the shell stops keeps its goroutine
// blocked in the reader until Close closes it, or until the reader returns.
//
// Both report an interrupted read as ErrInterrupted and end of input as io.EOF.
package input
