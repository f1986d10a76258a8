// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	prefix    = "\033["
	suffix    = "m"
	reset     = "\033[0m"
	sbPadding = 16
)

// Code represents an ANSI control code for text formatting.
type Code int

// Codes used by the shell's diagnostics.
const (
	Reset Code = 0
	Bold  Code = 1
	Faint Code = 2
)

// Foreground text colors.
const (
	FgRed Code = iota + 31
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors.
const (
	FgHiRed Code = iota + 91
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

var enabled = isColorCapable()

// Colorize wraps str in the given codes followed by a reset.
// When colour is disabled str is returned unchanged.
func Colorize(str string, codes ...Code) string {
	if !enabled || len(codes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

// Enabled reports whether colour output is enabled.
func Enabled() bool {
	return enabled
}

// SetEnabled overrides terminal detection and returns the previous value.
func SetEnabled(v bool) bool {
	prev := enabled
	enabled = v

	return prev
}

func isColorCapable() bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return term.IsTerminal(int(os.Stderr.Fd()))
}
