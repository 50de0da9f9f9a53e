package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/xolan/tally/internal/cli"
	"github.com/xolan/tally/internal/duration"
	"github.com/xolan/tally/internal/watch"
)

// SumOptions controls how a duration sum is reported.
type SumOptions struct {
	JSON bool
	Copy bool
}

// SumText totals the durations in text and prints the result
func SumText(ctx context.Context, deps *cli.Deps, text string, opts SumOptions) {
	result := deps.Services.Sum.Calculate(ctx, text)

	if opts.JSON {
		if err := cli.WriteJSON(deps.Stdout, cli.NewSumReport(result)); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
			return
		}
	} else {
		cli.RenderSum(deps.Stdout, result, deps.OutputWidth())
	}

	if opts.Copy {
		text, err := deps.Services.Sum.CopyTotal(ctx, result)
		reportCopy(deps, text, err, opts.JSON)
	}
}

// SumReader reads all of r and totals it
func SumReader(ctx context.Context, deps *cli.Deps, r io.Reader, opts SumOptions) {
	data, err := io.ReadAll(r)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read input")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
	SumText(ctx, deps, string(data), opts)
}

// SumFile totals the durations listed in the file at path
func SumFile(ctx context.Context, deps *cli.Deps, path string, opts SumOptions) {
	data, ok := readDurationFile(deps, path)
	if !ok {
		return
	}
	SumText(ctx, deps, data, opts)
}

// WatchSum prints the total of the file at path and prints it again every
// time the file changes, until ctx is cancelled.
func WatchSum(ctx context.Context, deps *cli.Deps, path string, opts SumOptions) {
	data, ok := readDurationFile(deps, path)
	if !ok {
		return
	}
	SumText(ctx, deps, data, opts)
	if !opts.JSON {
		_, _ = fmt.Fprintf(deps.Stdout, "\nWatching %s for changes (Ctrl+C to stop)\n", path)
	}

	onChange := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			// the file may be mid-save; the next event re-reads it
			deps.Services.Logger.Warn("failed to re-read watched file", "path", path, "error", err)
			return
		}
		if !opts.JSON {
			_, _ = fmt.Fprintf(deps.Stdout, "\n%s %s\n", time.Now().Format("15:04:05"), cli.Rule("-", deps.OutputWidth()-9))
		}
		SumText(ctx, deps, string(data), opts)
	}

	if err := watch.File(ctx, path, deps.Services.Logger, onChange); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to watch %s\n", path)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}

// ShowExample prints the example input and its total
func ShowExample(ctx context.Context, deps *cli.Deps, opts SumOptions) {
	if !opts.JSON {
		_, _ = fmt.Fprintln(deps.Stdout, "Example input:")
		for _, line := range strings.Split(duration.Example, "\n") {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", line)
		}
		_, _ = fmt.Fprintln(deps.Stdout)
	}
	SumText(ctx, deps, deps.Services.Sum.Example(), opts)
}

func readDurationFile(deps *cli.Deps, path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read %s\n", path)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: The file should list one duration per line, e.g. '01h 30m 45s'")
		deps.Exit(1)
		return "", false
	}
	return string(data), true
}

// reportCopy prints the clipboard outcome. A failed copy is a warning, never
// an error. With JSON output the confirmation goes to stderr so stdout stays
// machine-readable.
func reportCopy(deps *cli.Deps, text string, err error, jsonOutput bool) {
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		return
	}
	out := deps.Stdout
	if jsonOutput {
		out = deps.Stderr
	} else {
		_, _ = fmt.Fprintln(out)
	}
	_, _ = fmt.Fprintf(out, "Copied %s to clipboard\n", text)
}
