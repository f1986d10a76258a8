// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/matt-FFFFFF/cisfun/internal/config"
	"github.com/matt-FFFFFF/cisfun/internal/ctxlog"
	"github.com/matt-FFFFFF/cisfun/internal/input"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// stubFiles points the shell at files in a temporary directory.
// It returns the paths standard output and standard error are written to.
func stubFiles(t *testing.T, in string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "stdin")
	outPath := filepath.Join(dir, "stdout")
	errPath := filepath.Join(dir, "stderr")

	require.NoError(t, os.WriteFile(inPath, []byte(in), 0o600))

	inFile, err := os.Open(inPath)
	require.NoError(t, err)

	outFile, err := os.Create(outPath)
	require.NoError(t, err)

	errFile, err := os.Create(errPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = inFile.Close()
		_ = outFile.Close()
		_ = errFile.Close()
	})

	stubs := gostub.Stub(&stdin, inFile)
	stubs.Stub(&stdout, outFile)
	stubs.Stub(&stderr, errFile)
	t.Cleanup(stubs.Reset)

	return outPath, errPath
}

func newTestCmd() *cli.Command {
	return &cli.Command{
		Name:   "cisfun",
		Flags:  config.Flags(),
		Action: Action,
		// Exit errors are returned to the test instead of calling os.Exit.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(b)
}

func assertExitCode(t *testing.T, err error, want int) {
	t.Helper()

	var exitErr cli.ExitCoder

	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, want, exitErr.ExitCode())
}

func TestAction_RunsCommandsUntilExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/echo")
	}

	outPath, errPath := stubFiles(t, "/bin/echo hello world\n/no/such/program\nexit\n")

	err := newTestCmd().Run(context.Background(), []string{"cisfun", "--line-editing", "off", "--prompt", "$ "})
	require.NoError(t, err)

	assert.Equal(t, "$ hello world\n$ $ ", readFile(t, outPath))
	assert.Equal(t, "/no/such/program: no such file or directory\n", readFile(t, errPath))
}

func TestAction_EndOfInput(t *testing.T) {
	outPath, _ := stubFiles(t, "")

	err := newTestCmd().Run(context.Background(), []string{"cisfun", "--line-editing", "off"})
	require.NoError(t, err)

	assert.Equal(t, config.DefaultPrompt+"\n", readFile(t, outPath))
}

func TestAction_InvalidSettings(t *testing.T) {
	stubFiles(t, "")

	err := newTestCmd().Run(context.Background(), []string{"cisfun", "--line-max", "0", "--line-editing", "off"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "line-max")
	assertExitCode(t, err, 1)
}

func TestAction_InvalidLogLevel(t *testing.T) {
	stubFiles(t, "")

	err := newTestCmd().Run(context.Background(), []string{"cisfun", "--log-level", "LOUD", "--line-editing", "off"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown log level")
	assertExitCode(t, err, 1)
}

func TestNewSource_PlainWhenNotATerminal(t *testing.T) {
	stubFiles(t, "")

	for _, mode := range []string{config.LineEditingOff, config.LineEditingAuto} {
		t.Run(mode, func(t *testing.T) {
			settings := config.Default()
			settings.LineEditing = mode

			src := newSource(context.Background(), settings)
			t.Cleanup(func() { _ = src.Close() })

			assert.IsType(t, &input.Plain{}, src)
		})
	}
}

func TestWithLogger(t *testing.T) {
	level := ctxlog.LevelVar.Level()
	t.Cleanup(func() { ctxlog.LevelVar.Set(level) })

	settings := config.Default()
	settings.LogLevel = "debug"
	settings.LogFormat = ctxlog.FormatJSON

	ctx, err := withLogger(context.Background(), settings)
	require.NoError(t, err)
	assert.True(t, ctxlog.Logger(ctx).Enabled(ctx, ctxlog.LevelVar.Level()))
	assert.NotSame(t, ctxlog.DefaultLogger, ctxlog.Logger(ctx))
}
