// Package storage writes the small files tally owns, keeping rotated
// backups of what it replaces.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes data to path through a temp file in the same directory
// and renames it into place, creating the parent directory if needed.
// Readers never observe a partially written file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// ReplaceFile backs up the current contents of path, then writes data.
func ReplaceFile(path string, data []byte) error {
	if err := CreateBackup(path); err != nil {
		return fmt.Errorf("failed to back up %s: %w", path, err)
	}
	return WriteFile(path, data)
}
