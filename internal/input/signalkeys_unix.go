// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package input

import "golang.org/x/sys/unix"

// setSignalKeys turns the ISIG flag of the terminal on fd on or off.
// With ISIG off, Ctrl+C, Ctrl+\ and Ctrl+Z arrive as ordinary input bytes.
func setSignalKeys(fd int, enabled bool) error {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if enabled {
		t.Lflag |= unix.ISIG
	} else {
		t.Lflag &^= unix.ISIG
	}

	return unix.IoctlSetTermios(fd, ioctlWriteTermios, t) //nolint:wrapcheck
}
