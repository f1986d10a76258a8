// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/cisfun/internal/argv"
	"github.com/matt-FFFFFF/cisfun/internal/ctxlog"
	"github.com/matt-FFFFFF/cisfun/internal/linereader"
)

// DefaultPrompt is shown before every read.
const DefaultPrompt = "#cisfun$ "

// Line editing modes.
const (
	LineEditingAuto = "auto"
	LineEditingOn   = "on"
	LineEditingOff  = "off"
)

var (
	// ErrInvalidSettings wraps every validation failure.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrLineMax is returned when the line limit is not positive.
	ErrLineMax = errors.New("line-max must be greater than zero")
	// ErrArgvChunk is returned when the argument vector chunk is not positive.
	ErrArgvChunk = errors.New("argv-chunk must be greater than zero")
	// ErrArgvMax is returned when the token limit is negative.
	ErrArgvMax = errors.New("argv-max must not be negative")
	// ErrLineEditing is returned for an unknown line editing mode.
	ErrLineEditing = errors.New("line-editing must be one of auto, on, off")
)

// Settings is the complete configuration of one shell session.
type Settings struct {
	Prompt      string `yaml:"prompt"`
	LineMax     int    `yaml:"line_max"`
	Overlong    string `yaml:"overlong"`
	ArgvChunk   int    `yaml:"argv_chunk"`
	ArgvMax     int    `yaml:"argv_max"`
	LineEditing string `yaml:"line_editing"`
	HistoryFile string `yaml:"history_file,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
	LogFormat   string `yaml:"log_format"`

	// Env is the environment handed to every child. It is captured once and never modified.
	Env []string `yaml:"-"`
}

// Default returns the settings used when no flags are given.
func Default() *Settings {
	return &Settings{
		Prompt:      DefaultPrompt,
		LineMax:     linereader.DefaultMaxLine,
		Overlong:    linereader.PolicyReject.String(),
		ArgvChunk:   argv.DefaultChunk,
		ArgvMax:     argv.DefaultMaxTokens,
		LineEditing: LineEditingAuto,
		LogFormat:   ctxlog.FormatPretty,
		Env:         os.Environ(),
	}
}

// Validate reports every problem with s at once.
func (s *Settings) Validate() error {
	var result *multierror.Error

	if s.LineMax <= 0 {
		result = multierror.Append(result, ErrLineMax)
	}

	if _, err := linereader.ParsePolicy(s.Overlong); err != nil {
		result = multierror.Append(result, err)
	}

	if s.ArgvChunk <= 0 {
		result = multierror.Append(result, ErrArgvChunk)
	}

	if s.ArgvMax < 0 {
		result = multierror.Append(result, ErrArgvMax)
	}

	switch strings.ToLower(s.LineEditing) {
	case LineEditingAuto, LineEditingOn, LineEditingOff:
	default:
		result = multierror.Append(result, fmt.Errorf("%w: got %q", ErrLineEditing, s.LineEditing))
	}

	if s.LogLevel != "" {
		if _, err := ctxlog.ParseLevel(s.LogLevel); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if _, err := ctxlog.NewLogger(s.LogFormat, os.Stderr); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(ErrInvalidSettings, err)
	}

	return nil
}

// Policy returns the overlong line policy. Call Validate first.
func (s *Settings) Policy() linereader.OverlongPolicy {
	p, _ := linereader.ParsePolicy(s.Overlong)
	return p
}

// Tokenizer returns a tokenizer honouring the argument vector settings.
func (s *Settings) Tokenizer() *argv.Tokenizer {
	return &argv.Tokenizer{Chunk: s.ArgvChunk, MaxTokens: s.ArgvMax}
}

// YAML renders the settings.
func (s *Settings) YAML() ([]byte, error) {
	return yaml.Marshal(s) //nolint:wrapcheck
}
