// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistory struct {
	lines []string
	err   error
}

func (h *fakeHistory) ReadHistory(r io.Reader) (int, error) {
	if h.err != nil {
		return 0, h.err
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		h.lines = append(h.lines, s.Text())
	}

	return len(h.lines), s.Err()
}

func (h *fakeHistory) WriteHistory(w io.Writer) (int, error) {
	if h.err != nil {
		return 0, h.err
	}

	for _, l := range h.lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return 0, err
		}
	}

	return len(h.lines), nil
}

func TestHistory_SaveThenLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	stubs := gostub.Stub(&FsFactory, func() afero.Fs { return fs })
	defer stubs.Reset()

	path := "/home/user/.local/state/cisfun/history"

	n, err := saveHistory(FsFactory(), path, &fakeHistory{lines: []string{"/bin/ls -l", "/bin/pwd"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "/bin/ls -l\n/bin/pwd\n", string(content))

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())

	loaded := &fakeHistory{}
	n, err = loadHistory(FsFactory(), path, loaded)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"/bin/ls -l", "/bin/pwd"}, loaded.lines)
}

func TestHistory_LoadMissingFile(t *testing.T) {
	n, err := loadHistory(afero.NewMemMapFs(), "/nope", &fakeHistory{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHistory_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/history", []byte("x\n"), historyFileMode))

	broken := &fakeHistory{err: errors.New("broken")}

	_, err := loadHistory(fs, "/history", broken)
	require.ErrorIs(t, err, ErrReadHistory)

	_, err = saveHistory(fs, "/history", broken)
	require.ErrorIs(t, err, ErrWriteHistory)

	_, err = saveHistory(afero.NewReadOnlyFs(fs), "/other/history", &fakeHistory{})
	require.ErrorIs(t, err, ErrWriteHistory)
	assert.True(t, strings.Contains(err.Error(), "failed to write history file"))
}
