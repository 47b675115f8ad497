// Package logging configures structured logging for the converter using slog.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Options selects the handler and level.
type Options struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string

	// Format is "text" or "json".
	Format string

	// Verbose forces the debug level.
	Verbose bool

	// Writer receives log output. Defaults to os.Stderr.
	Writer io.Writer
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// New builds a logger tagged with a fresh run_id and returns both.
func New(opts Options) (*slog.Logger, string, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, "", err
	}
	if opts.Verbose {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	case "", "text":
		handler = slog.NewTextHandler(w, handlerOpts)
	default:
		return nil, "", fmt.Errorf("unknown log format %q", opts.Format)
	}

	runID := uuid.NewString()
	return slog.New(handler).With("run_id", runID), runID, nil
}

// Setup builds a logger with New and installs it as the slog default.
func Setup(opts Options) (string, error) {
	logger, runID, err := New(opts)
	if err != nil {
		return "", err
	}
	slog.SetDefault(logger)
	return runID, nil
}
