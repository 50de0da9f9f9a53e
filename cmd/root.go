package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xolan/tally/internal/cli"
	"github.com/xolan/tally/internal/cli/handlers"
	"github.com/xolan/tally/internal/osutil"
)

// NewRootCmd creates the top-level "tally" command and registers all
// subcommands against d.
func NewRootCmd(d *cli.Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "tally",
		Short: "Add up durations and weekly time sheets",
		Long: `tally is a CLI and terminal UI for adding up time.

Usage:
  tally                                  Open the terminal UI (or sum stdin when piped)
  tally 01h 30m 45s 2h                   Sum the durations given as arguments
  tally sum -f times.txt --watch         Re-total a file every time it is saved
  tally week --mon 8h --tue 7:30         Summarize a week
  tally parse '1h 30m'                   Show how a duration is read

Duration format: any combination of Nh, Nm and Ns (e.g. 01h 30m 45s, 2h, 45m)`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			if CheckTUIFlag(cmd, d) {
				return
			}
			if len(args) == 0 && isInteractive(d.Stdin) {
				runTUI(d)
				return
			}
			if !loadServices(d) {
				return
			}
			if len(args) > 0 {
				handlers.SumText(cmd.Context(), d, joinArgs(args), handlers.SumOptions{})
				return
			}
			handlers.SumReader(cmd.Context(), d, d.Stdin, handlers.SumOptions{})
		},
	}

	root.SetOut(d.Stdout)
	root.SetErr(d.Stderr)
	root.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")

	root.AddCommand(
		newSumCmd(d),
		newWeekCmd(d),
		newParseCmd(d),
		newConfigCmd(d),
		newTUICmd(d),
		newCompletionCmd(d),
	)

	return root
}

var versionInfo = struct {
	version, commit, date string
}{version: "dev", commit: "none", date: "unknown"}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionInfo.version = version
	versionInfo.commit = commit
	versionInfo.date = date
}

// Execute builds the command tree against the current global deps and runs
// it with args. The context is cancelled on SIGINT or SIGTERM.
func Execute(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd(cli.GetDeps())
	root.Version = versionInfo.version
	root.SetVersionTemplate(
		"tally version {{.Version}}\n" +
			"commit: " + versionInfo.commit + "\n" +
			"built: " + versionInfo.date + "\n",
	)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// joinArgs turns command-line arguments into duration text. Unquoted words
// such as `01h 30m 45s 2h` are joined with spaces so complete groups are
// split apart later; an argument holding whitespace was quoted as one
// duration and gets its own line.
func joinArgs(args []string) string {
	var lines []string
	var words []string
	flush := func() {
		if len(words) > 0 {
			lines = append(lines, strings.Join(words, " "))
			words = nil
		}
	}
	for _, arg := range args {
		if strings.ContainsAny(strings.TrimSpace(arg), " \t\n") {
			flush()
			lines = append(lines, arg)
			continue
		}
		words = append(words, arg)
	}
	flush()
	return strings.Join(lines, "\n")
}

// isInteractive reports whether r is a terminal rather than a pipe or file.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && osutil.IsTerminal(f)
}
