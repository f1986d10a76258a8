// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"strings"

	"github.com/matt-FFFFFF/cisfun/internal/argv"
	"github.com/matt-FFFFFF/cisfun/internal/ctxlog"
	"github.com/matt-FFFFFF/cisfun/internal/linereader"
	"github.com/urfave/cli/v3"
)

const (
	promptFlag      = "prompt"
	lineMaxFlag     = "line-max"
	overlongFlag    = "overlong"
	argvChunkFlag   = "argv-chunk"
	argvMaxFlag     = "argv-max"
	lineEditingFlag = "line-editing"
	historyFileFlag = "history-file"
	logLevelFlag    = "log-level"
	logFormatFlag   = "log-format"

	envPrefix = "CISFUN_"
)

func envVar(flag string) cli.ValueSourceChain {
	return cli.EnvVars(envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_")))
}

// Flags returns the command-line flags that populate Settings.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    promptFlag,
			Usage:   "Prompt written before each command is read",
			Value:   DefaultPrompt,
			Sources: envVar(promptFlag),
		},
		&cli.IntFlag{
			Name:    lineMaxFlag,
			Usage:   "Maximum command line length in bytes",
			Value:   linereader.DefaultMaxLine,
			Sources: envVar(lineMaxFlag),
		},
		&cli.StringFlag{
			Name:    overlongFlag,
			Usage:   "What to do with a line longer than line-max: reject or reassemble",
			Value:   linereader.PolicyReject.String(),
			Sources: envVar(overlongFlag),
		},
		&cli.IntFlag{
			Name:    argvChunkFlag,
			Usage:   "Initial capacity of the argument vector and the amount it grows by",
			Value:   argv.DefaultChunk,
			Sources: envVar(argvChunkFlag),
		},
		&cli.IntFlag{
			Name:    argvMaxFlag,
			Usage:   "Maximum number of arguments per command, 0 for no limit",
			Value:   argv.DefaultMaxTokens,
			Sources: envVar(argvMaxFlag),
		},
		&cli.StringFlag{
			Name:    lineEditingFlag,
			Usage:   "Line editing and history: auto (when on a terminal), on or off",
			Value:   LineEditingAuto,
			Sources: envVar(lineEditingFlag),
		},
		&cli.StringFlag{
			Name:      historyFileFlag,
			Usage:     "File to load and save line editing history, empty to keep history in memory",
			TakesFile: true,
			Sources:   envVar(historyFileFlag),
		},
		&cli.StringFlag{
			Name:    logLevelFlag,
			Usage:   "Log level: DEBUG, INFO, WARN or ERROR. Overrides " + ctxlog.EnvVarName(),
			Sources: envVar(logLevelFlag),
		},
		&cli.StringFlag{
			Name:    logFormatFlag,
			Usage:   "Log format: pretty or json",
			Value:   ctxlog.FormatPretty,
			Sources: envVar(logFormatFlag),
		},
	}
}

// FromCommand builds and validates Settings from the parsed flags of cmd.
func FromCommand(cmd *cli.Command) (*Settings, error) {
	s := Default()
	s.Prompt = cmd.String(promptFlag)
	s.LineMax = cmd.Int(lineMaxFlag)
	s.Overlong = cmd.String(overlongFlag)
	s.ArgvChunk = cmd.Int(argvChunkFlag)
	s.ArgvMax = cmd.Int(argvMaxFlag)
	s.LineEditing = strings.ToLower(cmd.String(lineEditingFlag))
	s.HistoryFile = cmd.String(historyFileFlag)
	s.LogLevel = cmd.String(logLevelFlag)
	s.LogFormat = cmd.String(logFormatFlag)

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}
