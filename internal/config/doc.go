// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the shell's settings.
//
// Settings come from command-line flags, each of which can also be set through a
// CISFUN_* environment variable. There is no rc file.
package config
