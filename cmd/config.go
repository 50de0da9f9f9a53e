package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/tally/internal/cli"
	"github.com/xolan/tally/internal/cli/handlers"
)

func newConfigCmd(d *cli.Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display or manage configuration settings",
		Long: `Display the current effective configuration settings for tally.

Shows the configuration file location, whether it exists, and all current settings.
Values are merged from the config file over the defaults:
  - week_start_day: monday (or sunday)
  - theme: (default) - any theme id listed in the TUI Config tab
  - copy_format: padded (01h 30m 00s) or compact (1h 30m)
  - log_level: warn (debug, info, warn, error)

Configuration file location:
  ~/.config/tally/config.toml          Linux
  ~/Library/Application Support/tally  macOS
  %APPDATA%\tally\config.toml          Windows`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if !loadServices(d) {
				return
			}
			handlers.ShowConfig(d)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a config file with the default settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if !loadServices(d) {
				return
			}
			handlers.InitConfig(d)
		},
	})

	return cmd
}
