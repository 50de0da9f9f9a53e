package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xolan/tally/internal/cli"
	"github.com/xolan/tally/internal/logging"
	"github.com/xolan/tally/internal/service"
	"github.com/xolan/tally/internal/tui"
)

func newTUICmd(d *cli.Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive terminal UI",
		Long: `Launch the interactive Terminal User Interface for tally.

Views available:
  - Week: Enter hours, minutes, seconds and untracked time per day
  - Durations: Paste or type a list of durations and see the total
  - Config: View configuration and pick a theme

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to specific view
  - c: Copy the total to the clipboard
  - ?: Show help and tips
  - q: Quit

Logs are written to tally.log next to the config file.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runTUI(d)
		},
	}
}

// runTUI initializes and runs the TUI application. Log records go to the
// log file since the terminal is taken over by the UI.
func runTUI(d *cli.Deps) {
	var logOut io.Writer = io.Discard
	if logPath, err := logging.GetLogPath(); err == nil {
		if f, err := logging.OpenFile(logPath); err == nil {
			defer func() { _ = f.Close() }()
			logOut = f
		}
	}

	services, err := service.NewServices(logOut)
	if err != nil {
		reportConfigError(d, err)
		return
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error running TUI: %v\n", err)
		d.Exit(1)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command, d *cli.Deps) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI(d)
		return true
	}
	return false
}
