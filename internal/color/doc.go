// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color applies ANSI colour codes to diagnostic output.
//
// Colour is enabled when FORCE_COLOR is set, or when standard error is a terminal.
// NO_COLOR always wins. Terminal detection uses golang.org/x/term.
package color
