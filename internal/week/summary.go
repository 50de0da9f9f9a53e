package week

import "github.com/xolan/tally/internal/duration"

// DayRow is the net time for one day.
type DayRow struct {
	Day          Day          `json:"-"`
	HMS          duration.HMS `json:"time"`
	TotalSeconds int          `json:"total_seconds"`
}

// Totals is the reduction of a set of per-entry second counts.
type Totals struct {
	TotalSeconds   int
	WorkingDays    int
	AverageSeconds int
}

// Aggregate sums seconds across entries, counts the entries with a positive
// value as working days, and floors total/working days into the average.
// With no working days the average is zero.
func Aggregate(seconds ...int) Totals {
	var t Totals
	for _, s := range seconds {
		t.TotalSeconds += s
		if s > 0 {
			t.WorkingDays++
		}
	}
	if t.WorkingDays > 0 {
		t.AverageSeconds = t.TotalSeconds / t.WorkingDays
	}
	return t
}

// Summary is the weekly roll-up shown next to the time sheet.
type Summary struct {
	Total            duration.HMS `json:"total"`
	TotalSeconds     int          `json:"total_seconds"`
	WorkingDays      int          `json:"working_days"`
	Average          duration.HMS `json:"average"`
	AverageSeconds   int          `json:"average_seconds"`
	UntrackedSeconds int          `json:"untracked_seconds"`
	Rows             []DayRow     `json:"-"`
}

// Summarize reduces w. Rows are returned in Monday-first order.
func Summarize(w *Week) Summary {
	rows := make([]DayRow, 0, DayCount)
	seconds := make([]int, 0, DayCount)
	tracked, untracked := 0, 0
	for _, d := range AllDays() {
		row := w.Row(d)
		rows = append(rows, row)
		seconds = append(seconds, row.TotalSeconds)
		tracked += w.Get(d).TrackedSeconds()
		untracked += w.Get(d).UntrackedSeconds()
	}

	// Working days come from the per-day rows, but every deduction comes
	// off the weekly total, even one larger than its own day.
	totals := Aggregate(seconds...)
	totals.TotalSeconds = max(tracked-untracked, 0)
	totals.AverageSeconds = 0
	if totals.WorkingDays > 0 {
		totals.AverageSeconds = totals.TotalSeconds / totals.WorkingDays
	}

	return Summary{
		Total:            duration.FromSeconds(totals.TotalSeconds),
		TotalSeconds:     totals.TotalSeconds,
		WorkingDays:      totals.WorkingDays,
		Average:          duration.FromSeconds(totals.AverageSeconds),
		AverageSeconds:   totals.AverageSeconds,
		UntrackedSeconds: untracked,
		Rows:             rows,
	}
}
