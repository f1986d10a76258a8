// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package process starts one child process and waits for it.
//
// Two failure classes are kept apart. If the operating system can not create a
// process at all (for example the process table is full) Run returns
// ErrCouldNotStartProcess and the caller should give up. If the process can be
// created but the named program can not be loaded into it (missing file,
// permission denied, bad format) Run returns a Result carrying ErrImageReplace
// and FailureExitCode, exactly as if the child had reported the problem and
// exited.
package process
