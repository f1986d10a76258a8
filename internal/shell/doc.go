// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell implements the read, tokenize, spawn and wait loop.
//
// The loop is a small state machine:
//
//	PROMPT -> READ -> PARSE -> DISPATCH -> CHILD -> WAIT -> PROMPT
//	                              |
//	                              +-> EXIT
//
// Exactly one child runs at a time and the loop always waits for it before
// prompting again. The only built-in command is "exit".
package shell
