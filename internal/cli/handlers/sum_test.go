package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/tally/internal/config"
	"github.com/xolan/tally/internal/duration"
)

func TestSumText(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	SumText(context.Background(), deps, duration.Example, SumOptions{})

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	for _, want := range []string{"3 entries:", "Total:    04h 31m 30s", "Average:  91 minutes"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("expected %q in output, got %q", want, stdout.String())
		}
	}
}

func TestSumText_Empty(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	SumText(context.Background(), deps, "", SumOptions{})

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "No durations found.") {
		t.Errorf("expected empty notice, got %q", stdout.String())
	}
}

func TestSumText_JSON(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)

	SumText(context.Background(), deps, "1h 30m\n45m", SumOptions{JSON: true})

	var got struct {
		Total        string `json:"total"`
		TotalSeconds int    `json:"total_seconds"`
		Count        int    `json:"count"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", stdout.String(), err)
	}
	if got.Total != "02h 15m 00s" || got.TotalSeconds != 8100 || got.Count != 2 {
		t.Errorf("unexpected report: %+v", got)
	}
}

func TestSumText_Copy(t *testing.T) {
	env := setupTestEnv(t, filepath.Join(t.TempDir(), "config.toml"), config.DefaultConfig())

	SumText(context.Background(), env.deps, duration.Example, SumOptions{Copy: true})

	if env.clipboard.text != "04h 31m 30s" {
		t.Errorf("expected clipboard '04h 31m 30s', got %q", env.clipboard.text)
	}
	if !strings.Contains(env.stdout.String(), "Copied 04h 31m 30s to clipboard") {
		t.Errorf("expected copy confirmation, got %q", env.stdout.String())
	}
}

func TestSumText_CopyJSONConfirmsOnStderr(t *testing.T) {
	env := setupTestEnv(t, filepath.Join(t.TempDir(), "config.toml"), config.DefaultConfig())

	SumText(context.Background(), env.deps, "5m", SumOptions{Copy: true, JSON: true})

	if strings.Contains(env.stdout.String(), "Copied") {
		t.Errorf("confirmation should not pollute JSON output, got %q", env.stdout.String())
	}
	if !strings.Contains(env.stderr.String(), "Copied 00h 05m 00s to clipboard") {
		t.Errorf("expected confirmation on stderr, got %q", env.stderr.String())
	}
}

func TestSumText_CopyFailureIsWarning(t *testing.T) {
	env := setupTestEnv(t, filepath.Join(t.TempDir(), "config.toml"), config.DefaultConfig())
	env.clipboard.err = errors.New("no clipboard utility")

	SumText(context.Background(), env.deps, "5m", SumOptions{Copy: true})

	if *env.exitCode != 0 {
		t.Errorf("clipboard failure must not be fatal, got exit code %d", *env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Warning: could not copy to clipboard") {
		t.Errorf("expected warning, got %q", env.stderr.String())
	}
}

func TestSumReader(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)

	SumReader(context.Background(), deps, strings.NewReader("2h\n30m 15s\n"), SumOptions{})

	if !strings.Contains(stdout.String(), "Total:    02h 30m 15s") {
		t.Errorf("expected total from reader, got %q", stdout.String())
	}
}

func TestSumFile(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	path := filepath.Join(t.TempDir(), "times.txt")
	if err := os.WriteFile(path, []byte(duration.Example), 0644); err != nil {
		t.Fatal(err)
	}

	SumFile(context.Background(), deps, path, SumOptions{})

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "04h 31m 30s") {
		t.Errorf("expected total in output, got %q", stdout.String())
	}
}

func TestSumFile_Missing(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	SumFile(context.Background(), deps, filepath.Join(t.TempDir(), "nope.txt"), SumOptions{})

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	for _, want := range []string{"Error: Failed to read", "Details:", "Hint:"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("expected %q in stderr, got %q", want, stderr.String())
		}
	}
}

func TestWatchSum_StopsOnCancel(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	path := filepath.Join(t.TempDir(), "times.txt")
	if err := os.WriteFile(path, []byte("1h"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	WatchSum(ctx, deps, path, SumOptions{})

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Total:    01h 00m 00s") {
		t.Errorf("expected initial total, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Watching") {
		t.Errorf("expected watch notice, got %q", stdout.String())
	}
}

func TestShowExample(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)

	ShowExample(context.Background(), deps, SumOptions{})

	out := stdout.String()
	if !strings.Contains(out, "Example input:") || !strings.Contains(out, "  02h 15m 30s") {
		t.Errorf("expected example input listing, got %q", out)
	}
	if !strings.Contains(out, "Total:    04h 31m 30s") {
		t.Errorf("expected example total, got %q", out)
	}
}
