// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package version

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/cisfun"
	"github.com/urfave/cli/v3"
)

// VersionCmd prints the build version and commit.
var VersionCmd = &cli.Command{
	Name:   "version",
	Usage:  "Print the version and commit of this build",
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	_, err := fmt.Fprintf(cmd.Root().Writer, "cisfun %s (%s)\n", cisfun.Version, cisfun.Commit)
	return err //nolint:wrapcheck
}
