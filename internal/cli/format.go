// Package cli provides the CLI presentation layer for the tally application.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/xolan/tally/internal/duration"
	"github.com/xolan/tally/internal/week"
)

const (
	// DefaultWidth is used when stdout is not a terminal.
	DefaultWidth = 72
	minWidth     = 40
	maxWidth     = 100
)

// TerminalWidth returns the width of stdout clamped to a readable range,
// or DefaultWidth when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return min(max(width, minWidth), maxWidth)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if stem, ok := strings.CutSuffix(word, "y"); ok {
		return stem + "ies"
	}
	return word + "s"
}

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft right-aligns s within the given display width.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// Truncate shortens s to the given display width, marking the cut with "...".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "...")
}

// Rule returns a horizontal line of the given width.
func Rule(char string, width int) string {
	return strings.Repeat(char, width)
}

// RenderSum writes the records and totals of a duration sum.
func RenderSum(w io.Writer, result duration.SumResult, width int) {
	if result.Count == 0 {
		_, _ = fmt.Fprintln(w, "No durations found.")
		_, _ = fmt.Fprintf(w, "Total: %s\n", result.Formatted)
		return
	}

	// index, formatted value and seconds take a fixed 30 columns
	inputWidth := max(width-30, 10)
	indexWidth := len(fmt.Sprint(result.Count)) + 1

	_, _ = fmt.Fprintf(w, "%d %s:\n", result.Count, Pluralize("entry", result.Count))
	for i, rec := range result.Records {
		_, _ = fmt.Fprintf(w, "  %s %s  %s  %ss\n",
			PadLeft(fmt.Sprintf("%d.", i+1), indexWidth),
			PadRight(Truncate(rec.Original, inputWidth), inputWidth),
			rec.Formatted,
			PadLeft(fmt.Sprint(rec.Seconds), 6))
	}

	_, _ = fmt.Fprintln(w, Rule("-", width))
	_, _ = fmt.Fprintf(w, "Total:    %s\n", result.Formatted)
	_, _ = fmt.Fprintf(w, "Entries:  %d\n", result.Count)
	_, _ = fmt.Fprintf(w, "Average:  %d %s\n", result.AverageMinutes(), Pluralize("minute", result.AverageMinutes()))
}

// RenderWeek writes the weekly table in the given day order followed by the
// summary panel.
func RenderWeek(w io.Writer, wk *week.Week, summary week.Summary, days []week.Day, width int) {
	const (
		dayCol  = 10
		numCol  = 5
		netCol  = 11
		gapCols = 6
	)
	untrackedCol := max(width-dayCol-3*numCol-netCol-gapCols, 9)

	header := PadRight("Day", dayCol) + " " +
		PadLeft("Hours", numCol) + " " +
		PadLeft("Min", numCol) + " " +
		PadLeft("Sec", numCol) + " " +
		PadRight("Untracked", untrackedCol) + " " +
		"Net"
	_, _ = fmt.Fprintln(w, header)
	_, _ = fmt.Fprintln(w, Rule("-", runewidth.StringWidth(header)+netCol-3))

	for _, d := range days {
		in := wk.Get(d)
		row := wk.Row(d)
		untracked := in.Untracked
		if untracked == "" {
			untracked = "-"
		}
		_, _ = fmt.Fprintln(w, PadRight(d.Info().Label, dayCol)+" "+
			PadLeft(fmt.Sprint(in.Hours), numCol)+" "+
			PadLeft(fmt.Sprint(in.Minutes), numCol)+" "+
			PadLeft(fmt.Sprint(in.Seconds), numCol)+" "+
			PadRight(Truncate(untracked, untrackedCol), untrackedCol)+" "+
			row.HMS.String())
	}

	_, _ = fmt.Fprintln(w)
	RenderWeekSummary(w, summary)
}

// RenderWeekSummary writes the weekly roll-up.
func RenderWeekSummary(w io.Writer, summary week.Summary) {
	_, _ = fmt.Fprintf(w, "Total:         %s\n", summary.Total)
	_, _ = fmt.Fprintf(w, "Working days:  %d/%d\n", summary.WorkingDays, week.DayCount)
	_, _ = fmt.Fprintf(w, "Average:       %s per working day\n", duration.FormatHM(summary.AverageSeconds))
	_, _ = fmt.Fprintf(w, "Decimal:       %s\n", duration.FormatDecimalHours(summary.TotalSeconds))
	if summary.UntrackedSeconds > 0 {
		_, _ = fmt.Fprintf(w, "Untracked:     %s\n", duration.FormatCompact(summary.UntrackedSeconds))
	}
}
