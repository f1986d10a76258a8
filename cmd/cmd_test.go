// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/cisfun"
	"github.com/matt-FFFFFF/cisfun/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) string {
	t.Helper()

	var buf bytes.Buffer

	root := NewRootCmd()
	root.Writer = &buf

	require.NoError(t, root.Run(context.Background(), append([]string{"cisfun"}, args...)))

	return buf.String()
}

func TestVersion(t *testing.T) {
	out := runRoot(t, "version")
	assert.Equal(t, "cisfun "+cisfun.Version+" ("+cisfun.Commit+")\n", out)
}

func TestConfig_AppliesFlagsAndEnv(t *testing.T) {
	t.Setenv("CISFUN_ARGV_CHUNK", "8")

	out := runRoot(t, "--prompt", "> ", "--overlong", "reassemble", "config")

	var got config.Settings
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	assert.Equal(t, "> ", got.Prompt)
	assert.Equal(t, "reassemble", got.Overlong)
	assert.Equal(t, 8, got.ArgvChunk)
	assert.Equal(t, 1024, got.LineMax)
	assert.Nil(t, got.Env, "the environment is never rendered")
}
