// Package logging builds the slog loggers used by the CLI and TUI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xolan/tally/internal/config"
)

// LogFile is the name of the TUI log file inside the config directory.
const LogFile = "tally.log"

// ParseLevel maps a config log level to a slog.Level. Unknown values map to warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New returns a text logger writing to w at the given level.
// A nil writer yields a logger that discards everything.
func New(w io.Writer, level string) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Discard returns a logger that drops all records.
func Discard() *slog.Logger {
	return New(io.Discard, "error")
}

// GetLogPath returns the path of the TUI log file.
func GetLogPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFile), nil
}

// OpenFile opens path for appending. The caller closes the returned file.
func OpenFile(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
