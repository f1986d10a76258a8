// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// FormatPretty selects the coloured console handler.
	FormatPretty = "pretty"
	// FormatJSON selects the slog JSON handler.
	FormatJSON = "json"
)

var (
	// ErrUnknownLevel is returned when a log level name is not recognised.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownFormat is returned when a log format name is not recognised.
	ErrUnknownFormat = errors.New("unknown log format")
)

type loggerKey struct{}

// LevelVar is shared by every logger created in this package.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is used when the context carries no logger.
var DefaultLogger = slog.New(NewPrettyHandler(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithAutoColour(),
	WithDestinationWriter(os.Stderr),
))

func init() {
	LevelVar.Set(logLevelFromEnv())
}

// New returns a copy of ctx carrying logger. A nil logger means DefaultLogger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// NewLogger builds a logger of the named format writing to w.
func NewLogger(format string, w io.Writer) (*slog.Logger, error) {
	switch strings.ToLower(format) {
	case "", FormatPretty:
		return slog.New(NewPrettyHandler(&slog.HandlerOptions{Level: LevelVar},
			WithAutoColour(),
			WithDestinationWriter(w),
		)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: LevelVar})), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// EnvVarName returns the name of the environment variable holding the log level.
func EnvVarName() string {
	exec, _ := os.Executable()
	exec = filepath.Base(exec)

	if ext := filepath.Ext(exec); ext == ".exe" {
		exec = exec[:len(exec)-len(ext)]
	}

	exec = strings.ReplaceAll(exec, "-", "_")

	return strings.ToUpper(exec) + "_LOG_LEVEL"
}

func logLevelFromEnv() slog.Level {
	level, err := ParseLevel(os.Getenv(EnvVarName()))
	if err != nil {
		return slog.LevelWarn
	}

	return level
}
