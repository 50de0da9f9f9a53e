package clipboard

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

type fakeWriter struct {
	text string
	err  error
}

func (f *fakeWriter) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestCopier_Copy(t *testing.T) {
	w := &fakeWriter{}
	c := NewCopier(w, nil)

	if err := c.Copy(context.Background(), "01h 30m 45s"); err != nil {
		t.Fatalf("Copy() returned unexpected error: %v", err)
	}
	if w.text != "01h 30m 45s" {
		t.Errorf("clipboard = %q, expected %q", w.text, "01h 30m 45s")
	}
}

func TestCopier_CopyFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	c := NewCopier(&fakeWriter{err: errors.New("no display")}, logger)

	err := c.Copy(context.Background(), "x")
	if err == nil {
		t.Fatal("Copy() should return the writer error")
	}
	if !strings.Contains(err.Error(), "no display") {
		t.Errorf("error = %q, expected to wrap writer error", err.Error())
	}
	if !strings.Contains(buf.String(), "failed to copy") {
		t.Errorf("expected failure to be logged, got %q", buf.String())
	}
}

func TestCopier_CancelledContext(t *testing.T) {
	w := &fakeWriter{}
	c := NewCopier(w, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Copy(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("Copy() error = %v, expected context.Canceled", err)
	}
	if w.text != "" {
		t.Error("clipboard should not be written after cancellation")
	}
}

func TestNewCopier_DefaultsToSystem(t *testing.T) {
	c := NewCopier(nil, nil)
	if _, ok := c.writer.(System); !ok {
		t.Errorf("expected System writer, got %T", c.writer)
	}
}

func TestAckDuration(t *testing.T) {
	if AckDuration.Seconds() != 2 {
		t.Errorf("AckDuration = %v, expected 2s", AckDuration)
	}
}
