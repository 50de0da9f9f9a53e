// Package clipboard copies formatted totals to the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
)

// AckDuration is how long a "copied" acknowledgment stays visible.
const AckDuration = 2 * time.Second

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard unsupported on this system")

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard via atotto/clipboard.
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Copier writes text through a Writer and logs failures. A failed copy is
// never fatal: callers only use the error to decide whether to acknowledge.
type Copier struct {
	writer Writer
	logger *slog.Logger
}

// NewCopier returns a Copier. A nil writer uses the system clipboard and a
// nil logger discards log output.
func NewCopier(w Writer, logger *slog.Logger) *Copier {
	if w == nil {
		w = System{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Copier{writer: w, logger: logger}
}

// Copy writes text to the clipboard.
func (c *Copier) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.writer.WriteAll(text); err != nil {
		c.logger.ErrorContext(ctx, "failed to copy", "error", err)
		return fmt.Errorf("failed to copy: %w", err)
	}
	c.logger.DebugContext(ctx, "copied to clipboard", "text", text)
	return nil
}
