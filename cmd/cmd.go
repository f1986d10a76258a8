// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/cisfun/cmd/config"
	"github.com/matt-FFFFFF/cisfun/cmd/run"
	"github.com/matt-FFFFFF/cisfun/cmd/version"
	internalconfig "github.com/matt-FFFFFF/cisfun/internal/config"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI. Without a subcommand it runs the shell.
var RootCmd = NewRootCmd()

// NewRootCmd builds the root command with a fresh set of flags.
func NewRootCmd() *cli.Command {
	return &cli.Command{
		Commands: []*cli.Command{
			config.ConfigCmd,
			run.RunCmd,
			version.VersionCmd,
		},
		Flags:     internalconfig.Flags(),
		Action:    run.Action,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "cisfun",
		Description: `cisfun is a minimal interactive shell. It shows a prompt, reads one line,
splits it into words on whitespace and runs the first word as a program path
with the remaining words as its arguments. There is no PATH search, quoting,
redirection or job control. Type exit or send end of input to leave.`,
		Usage:     "cisfun [--prompt '$ ']",
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		EnableShellCompletion: true,
	}
}
