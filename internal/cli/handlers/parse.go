package handlers

import (
	"fmt"

	"github.com/xolan/tally/internal/cli"
	"github.com/xolan/tally/internal/duration"
)

// ParseOptions controls duration parsing.
type ParseOptions struct {
	// Loose accepts clock forms (1:30) and bare minutes in addition to h/m/s tokens
	Loose bool
	JSON  bool
}

// ParseDurations prints the seconds each input parses to
func ParseDurations(deps *cli.Deps, inputs []string, opts ParseOptions) {
	if len(inputs) == 0 {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No duration given")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: tally parse '01h 30m 45s'")
		deps.Exit(1)
		return
	}

	parse := duration.Parse
	if opts.Loose {
		parse = duration.ParseLoose
	}

	reports := make([]cli.ParseReport, 0, len(inputs))
	width := 0
	for _, in := range inputs {
		seconds := parse(in)
		reports = append(reports, cli.ParseReport{
			Input:     in,
			Seconds:   seconds,
			Formatted: duration.FormatHMS(seconds),
		})
		width = max(width, len(fmt.Sprintf("%q", in)))
	}

	if opts.JSON {
		if err := cli.WriteJSON(deps.Stdout, reports); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
		}
		return
	}

	for _, r := range reports {
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %s  %s\n",
			cli.PadRight(fmt.Sprintf("%q", r.Input), width),
			cli.PadLeft(fmt.Sprintf("%ds", r.Seconds), 8),
			r.Formatted)
	}
}
