package storage

import (
	"fmt"
	"io"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path of backup n for path, e.g. config.toml.bak.1.
// Lower numbers are more recent.
func BackupPath(path string, n int) string {
	return fmt.Sprintf("%s%s.%d", path, BackupSuffix, n)
}

// rotateBackups shifts .bak.1 -> .bak.2 and so on, dropping the oldest.
// Missing files are skipped.
func rotateBackups(path string) error {
	if err := os.Remove(BackupPath(path, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(path, i), BackupPath(path, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup copies path to .bak.1 after rotating older backups.
// A missing file is not an error and creates no backup.
func CreateBackup(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(path); err != nil {
		return fmt.Errorf("failed to rotate backups: %w", err)
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(BackupPath(path, 1))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// BackupInfo describes one existing backup file
type BackupInfo struct {
	Number int    // 1 is the most recent
	Path   string // full path to the backup file
}

// ListBackups returns the backups of path that exist, most recent first.
func ListBackups(path string) []BackupInfo {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		p := BackupPath(path, i)
		if _, err := os.Stat(p); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: p})
		}
	}
	return backups
}
