package main

import (
	"os"
	"testing"
)

func TestRun_Version(t *testing.T) {
	if code := run([]string{"--version"}); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	if code := run([]string{"--no-such-flag"}); code != 1 {
		t.Errorf("Expected exit code 1 for an unknown flag, got %d", code)
	}
}

func TestMain_ExitCode(t *testing.T) {
	originalArgs := os.Args
	originalExit := exitFunc
	defer func() {
		os.Args = originalArgs
		exitFunc = originalExit
	}()

	capturedCode := -1
	exitFunc = func(code int) {
		capturedCode = code
	}
	os.Args = []string{"tally", "--version"}

	main()

	if capturedCode != 0 {
		t.Errorf("Expected exit code 0, got %d", capturedCode)
	}
}
