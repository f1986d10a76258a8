// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package linereader reads newline-terminated lines with a bounded length.
//
// A line longer than the limit is handled according to an OverlongPolicy. It is
// never split into two lines, so the tail of an overlong command can not run as a
// command of its own on the next read.
package linereader
