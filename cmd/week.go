package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xolan/tally/internal/cli"
	"github.com/xolan/tally/internal/cli/handlers"
	"github.com/xolan/tally/internal/week"
)

func newWeekCmd(d *cli.Deps) *cobra.Command {
	var (
		sample    bool
		untracked map[string]string
		opts      handlers.WeekOptions
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Summarize a weekly time sheet",
		Long: `Summarize time logged per day: weekly total, working days, and the
average per working day.

Day values accept 8h, 7h 30m, 7:30, 7:30:15, or a bare number of minutes.
Untracked time is deducted from a day; a day deducted to zero is not a
working day.

Examples:
  tally week --mon 8h --tue 7:30 --wed 6h45m
  tally week --sample --untracked fri=2h
  tally week --sample --copy               Copy the weekly total
  tally week --mon 8h --json`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if !loadServices(d) {
				return
			}

			times := make(map[string]string)
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if f.Annotations[dayAnnotation] != nil {
					times[f.Name] = f.Value.String()
				}
			})

			base := week.New()
			if sample {
				base = week.Sample()
			}

			wk, ok := handlers.BuildWeek(d, base, times, untracked)
			if !ok {
				return
			}
			handlers.ShowWeek(cmd.Context(), d, wk, opts)
		},
	}

	for _, day := range week.AllDays() {
		info := day.Info()
		name := dayFlagName(info)
		cmd.Flags().String(name, "", "Time logged on "+info.Label)
		_ = cmd.Flags().SetAnnotation(name, dayAnnotation, []string{info.ID})
		_ = cmd.RegisterFlagCompletionFunc(name, completeDayValue)
	}
	cmd.Flags().StringToStringVarP(&untracked, "untracked", "u", nil, "Untracked time per day, e.g. mon=30m,fri=1h")
	_ = cmd.RegisterFlagCompletionFunc("untracked", completeUntracked)
	cmd.Flags().BoolVar(&sample, "sample", false, "Start from sample data (8h every day)")
	cmd.Flags().BoolVarP(&opts.Copy, "copy", "c", false, "Copy the weekly total to the clipboard")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the summary as JSON")

	return cmd
}

const dayAnnotation = "tally_day"

// dayFlagName is the lower-case abbreviation, e.g. "mon".
func dayFlagName(info week.DayInfo) string {
	return info.ID[:3]
}
