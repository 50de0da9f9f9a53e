package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type mockProvider struct {
	dir string
	err error
}

func (m mockProvider) UserConfigDir() (string, error) { return m.dir, m.err }

func (m mockProvider) MkdirAll(path string, perm os.FileMode) error { return m.err }

func TestDefaultPathProvider_MkdirAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := (DefaultPathProvider{}).MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll() returned unexpected error: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("expected directory %s to exist", dir)
	}
}

func TestSetProvider(t *testing.T) {
	defer ResetProvider()

	SetProvider(mockProvider{err: errors.New("boom")})

	if _, err := Provider.UserConfigDir(); err == nil {
		t.Error("expected mock provider error")
	}

	ResetProvider()
	if _, ok := Provider.(DefaultPathProvider); !ok {
		t.Errorf("expected DefaultPathProvider after reset, got %T", Provider)
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if IsTerminal(f) {
		t.Error("regular file should not be reported as a terminal")
	}
	if IsTerminal(nil) {
		t.Error("nil file should not be reported as a terminal")
	}
}
