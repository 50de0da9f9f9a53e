package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/tally/internal/cli"
	"github.com/xolan/tally/internal/config"
	"github.com/xolan/tally/internal/logging"
	"github.com/xolan/tally/internal/service"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type testEnv struct {
	deps      *cli.Deps
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	exitCode  *int
	clipboard *fakeClipboard
}

func setupTestEnv(t *testing.T, configPath string, cfg config.Config) *testEnv {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0
	clip := &fakeClipboard{}

	services := service.NewServicesWithPaths(configPath, cfg, clip, logging.New(stderr, "error"))

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: services,
		Width:    func() int { return cli.DefaultWidth },
	}

	return &testEnv{deps: deps, stdout: stdout, stderr: stderr, exitCode: &exitCode, clipboard: clip}
}

func setupTestDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	env := setupTestEnv(t, filepath.Join(t.TempDir(), "config.toml"), config.DefaultConfig())
	return env.deps, env.stdout, env.stderr, env.exitCode
}

// setupBrokenConfigDeps creates deps whose config directory is a regular
// file, so every config write fails
func setupBrokenConfigDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0644); err != nil {
		t.Fatal(err)
	}
	env := setupTestEnv(t, filepath.Join(blocker, "config.toml"), config.DefaultConfig())
	return env.deps, env.stdout, env.stderr, env.exitCode
}
