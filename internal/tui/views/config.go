package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/tally/internal/config"
	"github.com/xolan/tally/internal/duration"
	"github.com/xolan/tally/internal/service"
	"github.com/xolan/tally/internal/tui/ui"
)

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// ConfigModel is the model for the config view
type ConfigModel struct {
	services      *service.Services
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	// UI state
	width     int
	height    int
	config    config.Config
	path      string
	exists    bool
	themeName string
	err       error

	// Theme selector state
	selectingTheme bool
	themes         []ui.ThemeInfo
	themeCursor    int
	themeOffset    int
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	m := ConfigModel{
		services:      services,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		themes:        themeProvider.Themes(),
		themeName:     themeProvider.CurrentName(),
	}
	m.resetThemeCursor()
	return m
}

// configLoadedMsg is sent when the view is (re)opened
type configLoadedMsg struct {
	config config.Config
	path   string
	exists bool
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadConfig()
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Theme):
			m.selectingTheme = true
			m.updateThemeOffset()
			return m, nil
		case key.Matches(msg, m.keys.WeekStart):
			cfg := m.services.Config.Get()
			cfg.WeekStartDay = toggle(cfg.WeekStartDay, "monday", "sunday")
			return m, m.save(cfg)
		case key.Matches(msg, m.keys.CopyFormat):
			cfg := m.services.Config.Get()
			cfg.CopyFormat = toggle(cfg.CopyFormat, duration.StylePadded, duration.StyleCompact)
			return m, m.save(cfg)
		}

	case configLoadedMsg:
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists

	case ui.ConfigSavedMsg:
		m.config = m.services.Config.Get()
		m.exists = m.services.Config.Exists()
		m.err = msg.Err
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		m.config.Theme = msg.ThemeName
		m.resetThemeCursor()
		return m, nil
	}

	return m, nil
}

// handleThemeSelection handles keys when theme selector is open
func (m ConfigModel) handleThemeSelection(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}

	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}

	case key.Matches(msg, m.keys.Select):
		m.selectingTheme = false
		if len(m.themes) == 0 {
			return m, nil
		}
		selected := m.themes[m.themeCursor].ID
		return m, func() tea.Msg {
			return ui.ThemeChangeRequestMsg{ThemeName: selected}
		}

	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.resetThemeCursor()
	}

	return m, nil
}

func (m *ConfigModel) resetThemeCursor() {
	for i, t := range m.themes {
		if t.ID == m.themeName {
			m.themeCursor = i
			break
		}
	}
	m.updateThemeOffset()
}

// updateThemeOffset adjusts scroll offset to keep cursor visible
func (m *ConfigModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")

	b.WriteString(statLine(m.styles, "Config file:", m.path))
	b.WriteString(m.styles.StatLabel.Render("Status:"))
	b.WriteString(" ")
	if m.exists {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no config file)"))
	}
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(strings.Repeat("─", min(50, max(m.width, 1))))
	b.WriteString("\n\n")

	b.WriteString(statLine(m.styles, "week_start_day:", m.config.WeekStartDay))
	b.WriteString(statLine(m.styles, "copy_format:", m.config.CopyFormat+"  ("+duration.Format(5400, m.config.CopyFormat)+")"))
	b.WriteString(statLine(m.styles, "log_level:", m.config.LogLevel))

	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
	} else {
		b.WriteString(statLine(m.styles, "theme:", m.themeProvider.CurrentDisplayName()+" ("+m.themeName+")"))
		b.WriteString("\n")
		b.WriteString(keyHints(m.styles, "t", "change theme", "w", "toggle week start", "f", "toggle copy format"))
	}

	return b.String()
}

// renderThemeSelector renders the theme selection list
func (m ConfigModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(statLine(m.styles, "theme:", "Select a theme"))
	b.WriteString("\n")

	endIdx := min(m.themeOffset+maxVisibleThemes, len(m.themes))

	if m.themeOffset > 0 {
		b.WriteString(m.styles.Muted.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := m.themeOffset; i < endIdx; i++ {
		theme := m.themes[i]
		current := theme.ID == m.themeName
		switch {
		case i == m.themeCursor:
			b.WriteString(m.styles.RowSelected.Render("▸ " + theme.DisplayName))
		case current:
			b.WriteString("  " + m.styles.Success.Render(theme.DisplayName))
		default:
			b.WriteString("  " + m.styles.StatValue.Render(theme.DisplayName))
		}
		b.WriteString(" " + m.styles.Muted.Render(theme.ID))
		if current {
			b.WriteString(m.styles.Success.Render(" (current)"))
		}
		b.WriteString("\n")
	}

	if endIdx < len(m.themes) {
		b.WriteString(m.styles.Muted.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(keyHints(m.styles, "↑/↓", "navigate", "enter", "select", "esc", "cancel"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode reports whether the theme selector is open
func (m ConfigModel) IsInputMode() bool {
	return m.selectingTheme
}

// loadConfig creates a command that reports the current config.
func (m ConfigModel) loadConfig() tea.Cmd {
	return func() tea.Msg {
		return configLoadedMsg{
			config: m.services.Config.Get(),
			path:   m.services.Config.GetPath(),
			exists: m.services.Config.Exists(),
		}
	}
}

// save writes cfg to the config file.
func (m ConfigModel) save(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return ui.ConfigSavedMsg{Err: m.services.Config.Update(cfg)}
	}
}

func toggle(current, a, b string) string {
	if current == a {
		return b
	}
	return a
}
