package cmd

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
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return nil
}

type cmdResult struct {
	stdout    string
	stderr    string
	exitCode  int
	clipboard string
}

// executeCmd runs a fresh command tree against test dependencies and
// captures its output.
func executeCmd(t *testing.T, stdin string, args ...string) cmdResult {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	clip := &fakeClipboard{}
	exitCode := 0

	configPath := filepath.Join(t.TempDir(), "config.toml")
	d := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(stdin),
		Exit:     func(code int) { exitCode = code },
		Services: service.NewServicesWithPaths(configPath, config.DefaultConfig(), clip, logging.New(stderr, "error")),
		Width:    func() int { return cli.DefaultWidth },
	}

	root := NewRootCmd(d)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		exitCode = 1
	}

	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), exitCode: exitCode, clipboard: clip.text}
}

func TestRoot_SumsArguments(t *testing.T) {
	res := executeCmd(t, "", "01h 30m 45s", "02h 15m 30s", "00h 45m 15s")

	if res.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", res.exitCode, res.stderr)
	}
	if !strings.Contains(res.stdout, "Total:    04h 31m 30s") {
		t.Errorf("expected total in output, got %q", res.stdout)
	}
}

func TestRoot_SumsPipedStdin(t *testing.T) {
	res := executeCmd(t, "1h\n30m\n")

	if !strings.Contains(res.stdout, "Total:    01h 30m 00s") {
		t.Errorf("expected total from stdin, got %q", res.stdout)
	}
}

func TestRoot_UnknownFlag(t *testing.T) {
	res := executeCmd(t, "", "--bogus")

	if res.exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", res.exitCode)
	}
}

func TestSum_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "times.txt")
	if err := os.WriteFile(path, []byte("2h\n2h\n"), 0644); err != nil {
		t.Fatal(err)
	}

	res := executeCmd(t, "", "sum", "-f", path, "--json")

	if !strings.Contains(res.stdout, `"total": "04h 00m 00s"`) {
		t.Errorf("expected JSON total, got %q", res.stdout)
	}
}

func TestSum_Example(t *testing.T) {
	res := executeCmd(t, "", "sum", "--example", "--copy")

	if !strings.Contains(res.stdout, "Example input:") {
		t.Errorf("expected example listing, got %q", res.stdout)
	}
	if res.clipboard != "04h 31m 30s" {
		t.Errorf("expected clipboard '04h 31m 30s', got %q", res.clipboard)
	}
}

func TestSum_WatchRequiresFile(t *testing.T) {
	res := executeCmd(t, "", "sum", "--watch")

	if res.exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", res.exitCode)
	}
	if !strings.Contains(res.stderr, "--watch requires --file") {
		t.Errorf("expected error about --file, got %q", res.stderr)
	}
}

func TestSum_Stdin(t *testing.T) {
	res := executeCmd(t, "45m\n15m", "sum")

	if !strings.Contains(res.stdout, "Total:    01h 00m 00s") {
		t.Errorf("expected total from stdin, got %q", res.stdout)
	}
}

func TestWeek_DayFlags(t *testing.T) {
	res := executeCmd(t, "", "week", "--mon", "8h", "--tue", "7:30", "--untracked", "mon=30m")

	if res.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", res.exitCode, res.stderr)
	}
	for _, want := range []string{"Total:         15h 00m 00s", "Working days:  2/7", "Average:       07h 30m", "Untracked:     30m"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("expected %q in output, got %q", want, res.stdout)
		}
	}
}

func TestWeek_SampleCopy(t *testing.T) {
	res := executeCmd(t, "", "week", "--sample", "--copy")

	if !strings.Contains(res.stdout, "Total:         56h 00m 00s") {
		t.Errorf("expected sample total, got %q", res.stdout)
	}
	if res.clipboard != "56h 00m 00s" {
		t.Errorf("expected clipboard '56h 00m 00s', got %q", res.clipboard)
	}
}

func TestWeek_InvalidUntrackedDay(t *testing.T) {
	res := executeCmd(t, "", "week", "--untracked", "funday=1h")

	if res.exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", res.exitCode)
	}
	if !strings.Contains(res.stderr, "Invalid day 'funday'") {
		t.Errorf("expected invalid day error, got %q", res.stderr)
	}
}

func TestParse_Loose(t *testing.T) {
	res := executeCmd(t, "", "parse", "--loose", "1:30")

	if !strings.Contains(res.stdout, "5400s") {
		t.Errorf("expected 5400s, got %q", res.stdout)
	}
}

func TestConfig_ShowAndInit(t *testing.T) {
	res := executeCmd(t, "", "config")
	if !strings.Contains(res.stdout, "Using defaults") {
		t.Errorf("expected defaults notice, got %q", res.stdout)
	}

	res = executeCmd(t, "", "config", "init")
	if !strings.Contains(res.stdout, "Created config file:") {
		t.Errorf("expected creation notice, got %q", res.stdout)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			res := executeCmd(t, "", "completion", shell)

			if res.stdout == "" {
				t.Errorf("expected %s completion output", shell)
			}
			if res.exitCode != 0 {
				t.Errorf("expected exit code 0, got %d", res.exitCode)
			}
		})
	}
}

func TestCompletion_InvalidShell(t *testing.T) {
	res := executeCmd(t, "", "completion", "tcsh")

	if res.exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", res.exitCode)
	}
}

func TestIsInteractive(t *testing.T) {
	if isInteractive(strings.NewReader("")) {
		t.Error("a string reader is not a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	if isInteractive(f) {
		t.Error("a regular file is not a terminal")
	}
}

func TestCompleteUntracked(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"fr", []string{"fri="}},
		{"mon=30m,s", []string{"mon=30m,sat=", "mon=30m,sun="}},
		{"T", []string{"tue=", "thu="}},
		{"mon=3", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, _ := completeUntracked(nil, nil, tt.input)
			if strings.Join(got, " ") != strings.Join(tt.expected, " ") {
				t.Errorf("completeUntracked(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSum_UnquotedDurationWords(t *testing.T) {
	res := executeCmd(t, "", "sum", "--json", "01h", "30m", "45s", "02h", "15m", "30s")

	if res.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", res.exitCode, res.stderr)
	}
	for _, want := range []string{`"count": 2`, `"average_minutes": 113`, `"total": "03h 46m 15s"`} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("expected %s in output, got %q", want, res.stdout)
		}
	}
}

func TestRoot_UnquotedDurationWords(t *testing.T) {
	res := executeCmd(t, "", "01h", "30m", "45s", "2h")

	for _, want := range []string{"2 entries:", "Total:    03h 30m 45s"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("expected %q in output, got %q", want, res.stdout)
		}
	}
}

func TestJoinArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"single words", []string{"1h", "30m"}, "1h 30m"},
		{"quoted durations", []string{"01h 30m 45s", "2h 15m"}, "01h 30m 45s\n2h 15m"},
		{"mixed", []string{"1h", "2h 5m", "10m"}, "1h\n2h 5m\n10m"},
		{"none", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinArgs(tt.args); got != tt.expected {
				t.Errorf("joinArgs(%q) = %q, want %q", tt.args, got, tt.expected)
			}
		})
	}
}

func TestExecute_UsesCurrentDeps(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	configPath := filepath.Join(t.TempDir(), "config.toml")
	d := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(int) {},
		Services: service.NewServicesWithPaths(configPath, config.DefaultConfig(), &fakeClipboard{}, logging.New(stderr, "error")),
		Width:    func() int { return cli.DefaultWidth },
	}

	cli.SetDeps(d)
	defer cli.ResetDeps()

	if err := Execute([]string{"parse", "1h 30m"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "5400s") {
		t.Errorf("expected output on the deps set after init, got %q", stdout.String())
	}
}

func TestExecute_Version(t *testing.T) {
	stdout := &bytes.Buffer{}
	d := cli.NewDeps(nil)
	d.Stdout = stdout
	cli.SetDeps(d)
	defer cli.ResetDeps()

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	defer SetVersionInfo("dev", "none", "unknown")

	if err := Execute([]string{"--version"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "tally version 1.2.3") || !strings.Contains(stdout.String(), "commit: abc123") {
		t.Errorf("expected version info, got %q", stdout.String())
	}
}
