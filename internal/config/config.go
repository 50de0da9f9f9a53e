package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xolan/tally/internal/app"
	"github.com/xolan/tally/internal/osutil"
)

// ConfigFile is the name of the TOML configuration file
const ConfigFile = "config.toml"

// Config represents the application configuration
type Config struct {
	// WeekStartDay defines which day the weekly table starts with (monday or sunday)
	WeekStartDay string `toml:"week_start_day"`
	// Theme is the bubbletint theme id used by the TUI
	Theme string `toml:"theme"`
	// CopyFormat selects how totals are copied: "padded" (01h 30m 00s) or "compact" (1h 30m)
	CopyFormat string `toml:"copy_format"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
// - week_start_day: "monday"
// - theme: "" (TUI default theme)
// - copy_format: "padded"
// - log_level: "warn"
func DefaultConfig() Config {
	return Config{
		WeekStartDay: "monday",
		Theme:        "",
		CopyFormat:   "padded",
		LogLevel:     "warn",
	}
}

// Normalize lowercases and trims the enumerated settings in place.
func (c *Config) Normalize() {
	c.WeekStartDay = strings.ToLower(strings.TrimSpace(c.WeekStartDay))
	c.CopyFormat = strings.ToLower(strings.TrimSpace(c.CopyFormat))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Theme = strings.TrimSpace(c.Theme)
}

// Validate checks that every setting holds an accepted value.
// Call Normalize first; Validate does not modify c.
func (c Config) Validate() error {
	switch c.WeekStartDay {
	case "monday", "sunday":
	default:
		return fmt.Errorf("invalid week_start_day %q: must be \"monday\" or \"sunday\"", c.WeekStartDay)
	}

	switch c.CopyFormat {
	case "padded", "compact":
	default:
		return fmt.Errorf("invalid copy_format %q: must be \"padded\" or \"compact\"", c.CopyFormat)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be debug, info, warn or error", c.LogLevel)
	}

	return nil
}

// Load reads the config file at path, merging it over the defaults.
// Unset keys keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config at path, returning defaults when the file
// does not exist. Any other read or parse failure is returned.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// Dir returns the application config directory, creating it if needed.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
func Dir() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, app.Name)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}
	return appDir, nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}

// GenerateSampleConfig returns a commented config file holding the defaults.
func GenerateSampleConfig() string {
	return Render(DefaultConfig())
}

// Render writes cfg as a commented TOML document.
func Render(cfg Config) string {
	return fmt.Sprintf(`# %s configuration file

# First day of the weekly table: "monday" or "sunday"
week_start_day = %q

# TUI theme id (see the Config tab for the list); empty uses the default
theme = %q

# Clipboard format for totals: "padded" (01h 30m 00s) or "compact" (1h 30m)
copy_format = %q

# Log level: debug, info, warn or error
log_level = %q
`, app.Name, cfg.WeekStartDay, cfg.Theme, cfg.CopyFormat, cfg.LogLevel)
}
