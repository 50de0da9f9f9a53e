package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("expected warn record with attributes, got %q", out)
	}
}

func TestNew_NilWriter(t *testing.T) {
	logger := New(nil, "debug")
	logger.Error("dropped")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), LogFile)

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() returned unexpected error: %v", err)
	}
	New(f, "info").Info("hello")
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Errorf("expected log file to contain record, got %q", string(data))
	}
}

func TestOpenFile_Error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", LogFile)

	if _, err := OpenFile(path); err == nil {
		t.Error("OpenFile() should fail for a missing directory")
	}
}
