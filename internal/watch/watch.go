// Package watch re-runs a callback whenever a single file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// changeOps are the operations that count as a content change. Editors
// often replace files through rename, which shows up as Create.
const changeOps = fsnotify.Write | fsnotify.Create

// File watches path until ctx is cancelled, calling onChange after every
// write or re-creation. The parent directory is watched so that atomic
// saves are observed. Watcher errors are logged and do not stop the loop.
func File(ctx context.Context, path string, logger *slog.Logger, onChange func()) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || event.Op&changeOps == 0 {
				continue
			}
			logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watch error", "error", err)
		}
	}
}
