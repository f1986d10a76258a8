// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linereader

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine_StripsNewline(t *testing.T) {
	lr := New(strings.NewReader("/bin/ls -l\n/bin/pwd\n"), 0, PolicyReject)

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "/bin/ls -l", line)

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "/bin/pwd", line)

	_, err = lr.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadLine_FinalLineWithoutNewline(t *testing.T) {
	lr := New(strings.NewReader("exit"), 0, PolicyReject)

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "exit", line)

	_, err = lr.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadLine_EmptyLines(t *testing.T) {
	lr := New(strings.NewReader("\n\n"), 0, PolicyReject)

	for range 2 {
		line, err := lr.ReadLine()
		require.NoError(t, err)
		assert.Empty(t, line)
	}

	_, err := lr.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadLine_EmptyInput(t *testing.T) {
	lr := New(strings.NewReader(""), 0, PolicyReject)

	_, err := lr.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadLine_Overlong(t *testing.T) {
	input := strings.Repeat("x", 12) + "\nok\n"

	t.Run("reject discards the whole line", func(t *testing.T) {
		lr := New(strings.NewReader(input), 8, PolicyReject)

		_, err := lr.ReadLine()
		require.ErrorIs(t, err, ErrLineTooLong)

		line, err := lr.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, "ok", line, "the tail of an overlong line must not become a command")
	})

	t.Run("reassemble returns the whole line", func(t *testing.T) {
		lr := New(strings.NewReader(input), 8, PolicyReassemble)

		line, err := lr.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("x", 12), line)

		line, err = lr.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, "ok", line)
	})

	t.Run("exactly at the limit is accepted", func(t *testing.T) {
		lr := New(strings.NewReader("12345678\n"), 8, PolicyReject)

		line, err := lr.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, "12345678", line)
	})
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    OverlongPolicy
		wantErr error
	}{
		{in: "reject", want: PolicyReject},
		{in: " Reassemble ", want: PolicyReassemble},
		{in: "truncate", want: PolicyReject, wantErr: ErrUnknownPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, strings.ToLower(strings.TrimSpace(tt.in)), got.String())
		})
	}
}
