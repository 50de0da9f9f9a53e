package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/tally/internal/clipboard"
	"github.com/xolan/tally/internal/tui/ui"
)

// copySource identifies which view asked for a clipboard write, so the
// result is only acknowledged by that view.
type copySource int

const (
	sourceWeek copySource = iota
	sourceDurations
)

// copyDoneMsg carries the outcome of a clipboard write.
type copyDoneMsg struct {
	source copySource
	seq    int
	text   string
	err    error
}

// copyExpiredMsg hides the "Copied" acknowledgment.
type copyExpiredMsg struct {
	source copySource
	seq    int
}

// copyState tracks the acknowledgment shown after a copy. seq discards
// results and expiries that belong to an earlier copy.
type copyState struct {
	source copySource
	seq    int
	copied bool
	text   string
	failed bool
}

// request starts a copy. fn runs off the update loop.
func (c *copyState) request(fn func(context.Context) (string, error)) tea.Cmd {
	c.seq++
	c.copied = false
	c.failed = false
	seq, source := c.seq, c.source
	return func() tea.Msg {
		text, err := fn(context.Background())
		return copyDoneMsg{source: source, seq: seq, text: text, err: err}
	}
}

// update applies copy messages addressed to this state. It returns false
// for any other message.
func (c *copyState) update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case copyDoneMsg:
		if msg.source != c.source || msg.seq != c.seq {
			return nil, msg.source == c.source
		}
		if msg.err != nil {
			// already logged by the copier
			c.failed = true
			return nil, true
		}
		c.copied = true
		c.text = msg.text
		seq, source := c.seq, c.source
		return tea.Tick(clipboard.AckDuration, func(time.Time) tea.Msg {
			return copyExpiredMsg{source: source, seq: seq}
		}), true

	case copyExpiredMsg:
		if msg.source != c.source {
			return nil, false
		}
		if msg.seq == c.seq {
			c.copied = false
		}
		return nil, true
	}
	return nil, false
}

// clear drops any acknowledgment, e.g. after the input changed.
func (c *copyState) clear() {
	c.copied = false
	c.failed = false
}

// view renders the acknowledgment line, or "" when there is none.
func (c copyState) view(styles ui.Styles) string {
	switch {
	case c.copied:
		return styles.Success.Render("✓ Copied " + c.text)
	case c.failed:
		return styles.Warning.Render("Could not copy to clipboard")
	}
	return ""
}

// statLine renders a "label value" line.
func statLine(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(label) + " " + styles.StatValue.Render(value) + "\n"
}

// keyHints renders "key desc" pairs separated by two spaces.
func keyHints(styles ui.Styles, pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, fmt.Sprintf("%s %s", styles.HelpKey.Render(pairs[i]), styles.HelpDesc.Render(pairs[i+1])))
	}
	return strings.Join(parts, "  ")
}

func fmtRatio(n, of int) string {
	return fmt.Sprintf("%d/%d", n, of)
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if stem, ok := strings.CutSuffix(word, "y"); ok {
		return stem + "ies"
	}
	return word + "s"
}
