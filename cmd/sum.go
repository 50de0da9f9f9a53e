package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/tally/internal/cli"
	"github.com/xolan/tally/internal/cli/handlers"
)

func newSumCmd(d *cli.Deps) *cobra.Command {
	var (
		file    string
		watch   bool
		example bool
		opts    handlers.SumOptions
	)

	cmd := &cobra.Command{
		Use:   "sum [DURATION...]",
		Short: "Add up a list of durations",
		Long: `Add up durations given as arguments, read from a file, or piped on stdin.

Each line is one duration. Several complete "Nh Nm Ns" groups on the same
line are counted separately. Lines without any h, m or s token are ignored.

Examples:
  tally sum 01h 30m 45s 02h 15m 30s       Sum two durations
  tally sum -f times.txt                  Sum a file, one duration per line
  tally sum -f times.txt --watch          Re-total whenever the file is saved
  pbpaste | tally sum --copy              Sum the clipboard and copy the total
  tally sum --example                     Show the built-in example`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if !loadServices(d) {
				return
			}
			ctx := cmd.Context()

			switch {
			case example:
				handlers.ShowExample(ctx, d, opts)
			case watch && file == "":
				_, _ = fmt.Fprintln(d.Stderr, "Error: --watch requires --file")
				_, _ = fmt.Fprintln(d.Stderr, "Hint: tally sum -f times.txt --watch")
				d.Exit(1)
			case watch:
				handlers.WatchSum(ctx, d, file, opts)
			case file != "":
				handlers.SumFile(ctx, d, file, opts)
			case len(args) > 0:
				handlers.SumText(ctx, d, joinArgs(args), opts)
			case isInteractive(d.Stdin):
				_, _ = fmt.Fprintln(d.Stderr, "Error: No durations given")
				_, _ = fmt.Fprintln(d.Stderr, "Hint: Pass durations as arguments, use --file, or pipe them on stdin")
				d.Exit(1)
			default:
				handlers.SumReader(ctx, d, d.Stdin, opts)
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read durations from a file, one per line")
	_ = cmd.MarkFlagFilename("file", "txt", "log", "md")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-total the file every time it changes (requires --file)")
	cmd.Flags().BoolVar(&example, "example", false, "Sum the built-in example input")
	cmd.Flags().BoolVarP(&opts.Copy, "copy", "c", false, "Copy the total to the clipboard")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the result as JSON")

	return cmd
}
