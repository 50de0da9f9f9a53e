package handlers

import (
	"strings"
	"testing"
)

func TestShowConfig(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	for _, want := range []string{"Configuration:", "Config file:", "tally.log", "week_start_day: monday", "theme:          (default)", "copy_format:    padded", "log_level:      warn"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("expected %q in output, got %q", want, stdout.String())
		}
	}
}

func TestShowConfig_NoFile(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Using defaults") {
		t.Errorf("expected 'Using defaults' in output, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "tally config init") {
		t.Errorf("expected init tip in output, got %q", stdout.String())
	}
}

func TestShowConfig_WithFile(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	InitConfig(deps)
	stdout.Reset()

	ShowConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "File exists") {
		t.Errorf("expected 'File exists' in output, got %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "Tip:") {
		t.Errorf("did not expect init tip once the file exists, got %q", stdout.String())
	}
}

func TestInitConfig(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	InitConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Created config file:") {
		t.Errorf("expected 'Created config file:' in output, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Edit this file") {
		t.Errorf("expected 'Edit this file' in output, got %q", stdout.String())
	}
}

func TestInitConfig_AlreadyExists(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	InitConfig(deps)
	InitConfig(deps)

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Errorf("expected 'already exists' in stderr, got %q", stderr.String())
	}
}

func TestInitConfig_Error(t *testing.T) {
	deps, _, stderr, exitCode := setupBrokenConfigDeps(t)

	InitConfig(deps)

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Error:") {
		t.Errorf("expected 'Error:' in stderr, got %q", stderr.String())
	}
}

func TestShowConfig_Backups(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)

	cfg := deps.Services.Config.Get()
	cfg.Theme = "nord"
	if err := deps.Services.Config.Update(cfg); err != nil {
		t.Fatal(err)
	}
	cfg.CopyFormat = "compact"
	if err := deps.Services.Config.Update(cfg); err != nil {
		t.Fatal(err)
	}

	ShowConfig(deps)

	if !strings.Contains(stdout.String(), "Backups:     1") {
		t.Errorf("expected backup count in output, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "config.toml.bak.1") {
		t.Errorf("expected latest backup path in output, got %q", stdout.String())
	}
}
