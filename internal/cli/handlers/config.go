package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xolan/tally/internal/cli"
	"github.com/xolan/tally/internal/logging"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintf(deps.Stdout, "TUI log:     %s\n", filepath.Join(filepath.Dir(path), logging.LogFile))
	if backups := deps.Services.Config.Backups(); len(backups) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Backups:     %d (latest: %s)\n", len(backups), backups[0].Path)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "week_start_day: %s\n", cfg.WeekStartDay)
	theme := cfg.Theme
	if theme == "" {
		theme = "(default)"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "theme:          %s\n", theme)
	_, _ = fmt.Fprintf(deps.Stdout, "copy_format:    %s\n", cfg.CopyFormat)
	_, _ = fmt.Fprintf(deps.Stdout, "log_level:      %s\n", cfg.LogLevel)

	if !deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout)
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'tally config init' to create a config file with these defaults.")
	}
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
