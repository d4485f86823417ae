package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	envDebug     = "RLAUNCH_DEBUG"
	debugLogName = "rlaunch.log"
)

// NewLogger returns the process logger. With RLAUNCH_DEBUG=1 it appends
// debug-level records to rlaunch.log in the temp dir; otherwise records are
// discarded, since stderr belongs to the terminal UI. The returned func
// closes the log file.
func NewLogger(getenv func(string) string) (*slog.Logger, func() error) {
	noop := func() error { return nil }
	if getenv == nil || getenv(envDebug) != "1" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), noop
	}

	path := filepath.Join(os.TempDir(), debugLogName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), noop
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger.With(slog.Int("pid", os.Getpid())), f.Close
}
