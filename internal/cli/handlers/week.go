package handlers

import (
	"context"
	"fmt"

	"github.com/xolan/tally/internal/cli"
	"github.com/xolan/tally/internal/duration"
	"github.com/xolan/tally/internal/week"
)

// WeekOptions controls how a weekly summary is reported.
type WeekOptions struct {
	JSON bool
	Copy bool
}

// ShowWeek prints the weekly table and summary for wk
func ShowWeek(ctx context.Context, deps *cli.Deps, wk *week.Week, opts WeekOptions) {
	summary := deps.Services.Week.Summarize(ctx, wk)
	days := deps.Services.Week.Days()

	if opts.JSON {
		if err := cli.WriteJSON(deps.Stdout, cli.NewWeekReport(wk, summary, days)); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
			return
		}
	} else {
		cli.RenderWeek(deps.Stdout, wk, summary, days, deps.OutputWidth())
		if summary.WorkingDays == 0 {
			_, _ = fmt.Fprintln(deps.Stdout)
			_, _ = fmt.Fprintln(deps.Stdout, "Tip: pass day values like --mon 8h --tue 7:30, or --sample to see an example.")
		}
	}

	if opts.Copy {
		text, err := deps.Services.Week.CopyTotal(ctx, summary)
		reportCopy(deps, text, err, opts.JSON)
	}
}

// BuildWeek assembles a week from per-day time values and per-day untracked
// deductions, both keyed by day name or abbreviation. Time values use the
// loose duration syntax ("8h", "7:30", "450"). It reports invalid day names
// on stderr and returns false.
func BuildWeek(deps *cli.Deps, base *week.Week, times, untracked map[string]string) (*week.Week, bool) {
	wk := base
	if wk == nil {
		wk = week.New()
	}

	for name, value := range times {
		d, ok := resolveDay(deps, name)
		if !ok {
			return nil, false
		}
		in := wk.Get(d)
		hms := duration.FromSeconds(duration.ParseLoose(value))
		in.Hours, in.Minutes, in.Seconds = hms.Hours, hms.Minutes, hms.Seconds
		wk.Put(d, in)
	}

	for name, value := range untracked {
		d, ok := resolveDay(deps, name)
		if !ok {
			return nil, false
		}
		wk.SetText(d, week.FieldUntracked, value)
	}

	return wk, true
}

func resolveDay(deps *cli.Deps, name string) (week.Day, bool) {
	d, err := week.ParseDay(name)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid day '%s'\n", name)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use --untracked mon=30m,fri=1h")
		deps.Exit(1)
		return 0, false
	}
	return d, true
}
