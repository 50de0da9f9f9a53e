package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/tally/internal/cli"
	"github.com/xolan/tally/internal/cli/handlers"
)

func newParseCmd(d *cli.Deps) *cobra.Command {
	var opts handlers.ParseOptions

	cmd := &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Show how durations are read",
		Long: `Print the number of seconds each argument parses to.

By default only h, m and s tokens count ("01h 30m 45s", "90m"). With --loose
the clock forms used for untracked time are accepted as well: "1:30",
"1:30:15", and bare numbers as minutes.`,
		Run: func(cmd *cobra.Command, args []string) {
			handlers.ParseDurations(d, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Loose, "loose", "l", false, "Accept clock forms and bare minutes")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print results as JSON")

	return cmd
}
