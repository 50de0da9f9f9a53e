package cmd

import (
	"fmt"

	"github.com/xolan/tally/internal/cli"
)

// loadServices makes sure d has services built from the user's config. On
// failure it reports the problem and exits.
func loadServices(d *cli.Deps) bool {
	if err := d.EnsureServices(); err != nil {
		reportConfigError(d, err)
		return false
	}
	return true
}

func reportConfigError(d *cli.Deps, err error) {
	_, _ = fmt.Fprintln(d.Stderr, "Error: Failed to load configuration")
	_, _ = fmt.Fprintf(d.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(d.Stderr, "Hint: Check the config file with 'tally config', or remove it to use defaults")
	d.Exit(1)
}
