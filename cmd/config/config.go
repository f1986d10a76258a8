// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/cisfun/internal/config"
	"github.com/urfave/cli/v3"
)

// ConfigCmd prints the effective settings as YAML.
// Flags and CISFUN_* environment variables are applied, so this shows what the shell would use.
var ConfigCmd = &cli.Command{
	Name:   "config",
	Usage:  "Print the effective settings as YAML",
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	settings, err := config.FromCommand(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out, err := settings.YAML()
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to render settings: %s", err.Error()), 1)
	}

	_, err = cmd.Root().Writer.Write(out)

	return err //nolint:wrapcheck
}
