// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const historyFileMode = 0o600

var (
	// ErrReadHistory is returned when the history file exists but could not be read.
	ErrReadHistory = errors.New("failed to read history file")
	// ErrWriteHistory is returned when the history file could not be written.
	ErrWriteHistory = errors.New("failed to write history file")
)

// FsFactory is a function that returns the filesystem history files live on.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

type historyReader interface {
	ReadHistory(r io.Reader) (int, error)
}

type historyWriter interface {
	WriteHistory(w io.Writer) (int, error)
}

// loadHistory reads the history file at path into h.
// A missing file is not an error.
func loadHistory(fs afero.Fs, path string, h historyReader) (int, error) {
	f, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}

		return 0, errors.Join(ErrReadHistory, err)
	}
	defer f.Close() //nolint:errcheck

	n, err := h.ReadHistory(f)
	if err != nil {
		return n, errors.Join(ErrReadHistory, err)
	}

	return n, nil
}

// saveHistory writes h to the history file at path, creating parent directories.
func saveHistory(fs afero.Fs, path string, h historyWriter) (int, error) {
	if err := fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return 0, errors.Join(ErrWriteHistory, err)
	}

	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, historyFileMode)
	if err != nil {
		return 0, errors.Join(ErrWriteHistory, err)
	}

	n, err := h.WriteHistory(f)
	if err != nil {
		_ = f.Close()
		return n, errors.Join(ErrWriteHistory, err)
	}

	if err := f.Close(); err != nil {
		return n, errors.Join(ErrWriteHistory, fmt.Errorf("closing %s: %w", path, err))
	}

	return n, nil
}
