// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger built on log/slog.
//
// The default logger writes human-readable lines to standard error, leaving
// standard output to the shell and its children. The level comes from an
// environment variable derived from the executable name: for an executable
// named "cisfun" it is CISFUN_LOG_LEVEL. Accepted values are DEBUG, INFO, WARN
// and ERROR; anything else means WARN.
package ctxlog
