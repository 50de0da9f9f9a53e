// Package tui provides the Terminal User Interface for the tally application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/tally/internal/service"
	"github.com/xolan/tally/internal/tui/ui"
	"github.com/xolan/tally/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabWeek Tab = iota
	TabDurations
	TabConfig
)

var tabNames = []string{"Week", "Durations", "Config"}

// quickTips are shown at the bottom of the help overlay
var quickTips = []string{
	"Values update automatically as you type",
	"Minutes and seconds are capped at 59",
	"Use Tab to navigate between fields quickly",
	"Press c to copy your total",
	"Press s to load sample data",
}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	weekView      views.WeekModel
	durationsView views.DurationsModel
	configView    views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabWeek,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		weekView:      views.NewWeekModel(services, styles, keys),
		durationsView: views.NewDurationsModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.weekView.Init(),
		m.durationsView.Init(),
		m.configView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Check input modes:
		// - modalInput: blocks ALL global keys (cell editing, theme selector)
		// - capturingKeys: blocks character keys but allows Tab (text area)
		modalInput := m.isModalInputMode()
		capturingKeys := m.isCapturingKeys()

		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if m.showHelp && !capturingKeys {
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
				m.showHelp = false
				return m, nil
			}
		}

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturingKeys:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturingKeys:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !modalInput:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !modalInput:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturingKeys:
			m.activeTab = TabWeek
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturingKeys:
			m.activeTab = TabDurations
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !capturingKeys:
			m.activeTab = TabConfig
			return m, m.initCurrentView()
		}

		if m.showHelp {
			return m, nil
		}

		// Keys only reach the active view
		var cmd tea.Cmd
		switch m.activeTab {
		case TabWeek:
			m.weekView, cmd = m.weekView.Update(msg)
		case TabDurations:
			m.durationsView, cmd = m.durationsView.Update(msg)
		case TabConfig:
			m.configView, cmd = m.configView.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.weekView.SetSize(m.width, contentHeight)
		m.durationsView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.weekView, _ = m.weekView.Update(themeMsg)
		m.durationsView, _ = m.durationsView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)
	}

	// Everything else is broadcast; views ignore what is not theirs
	return m.broadcast(msg)
}

// broadcast forwards msg to every view and batches their commands.
func (m Model) broadcast(msg tea.Msg) (Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 3)
	m.weekView, cmds[0] = m.weekView.Update(msg)
	m.durationsView, cmds[1] = m.durationsView.Update(msg)
	m.configView, cmds[2] = m.configView.Update(msg)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabWeek:
		b.WriteString(m.weekView.View())
	case TabDurations:
		b.WriteString(m.durationsView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	switch {
	case m.isModalInputMode() && m.activeTab == TabWeek:
		parts = append(parts, m.renderKeyHelp("Tab", "next field"))
		parts = append(parts, m.renderKeyHelp("Enter", "done"))
		parts = append(parts, m.renderKeyHelp("Esc", "undo"))
	case m.isModalInputMode():
		parts = append(parts, m.renderKeyHelp("↑/↓", "navigate"))
		parts = append(parts, m.renderKeyHelp("Enter", "select"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	case m.isCapturingKeys():
		parts = append(parts, m.renderKeyHelp("Esc", "stop editing"))
		parts = append(parts, m.renderKeyHelp("Tab", "next view"))
		parts = append(parts, m.renderKeyHelp("Ctrl+C", "quit"))
	default:
		switch m.activeTab {
		case TabWeek:
			parts = append(parts, m.renderKeyHelp("Enter", "edit"))
			parts = append(parts, m.renderKeyHelp("c", "copy"))
			parts = append(parts, m.renderKeyHelp("s", "sample"))
			parts = append(parts, m.renderKeyHelp("r", "reset"))
		case TabDurations:
			parts = append(parts, m.renderKeyHelp("Enter", "edit"))
			parts = append(parts, m.renderKeyHelp("c", "copy"))
			parts = append(parts, m.renderKeyHelp("e", "example"))
			parts = append(parts, m.renderKeyHelp("x", "clear"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
			parts = append(parts, m.renderKeyHelp("w", "week start"))
			parts = append(parts, m.renderKeyHelp("f", "copy format"))
		}

		// Global keys
		parts = append(parts, m.renderKeyHelp("1-3", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isModalInputMode checks if the current view is in a modal input mode
// where the user should not be able to switch views
func (m Model) isModalInputMode() bool {
	switch m.activeTab {
	case TabWeek:
		return m.weekView.IsInputMode()
	case TabConfig:
		return m.configView.IsInputMode()
	}
	return false
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	if m.activeTab == TabDurations {
		return m.durationsView.IsInputMode()
	}
	return m.isModalInputMode()
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabWeek:
		return m.weekView.Init()
	case TabDurations:
		return m.durationsView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		err := m.services.Config.Update(cfg)
		if err != nil {
			m.services.Logger.Warn("failed to save theme", "theme", themeName, "error", err)
		}
		return ui.ConfigSavedMsg{Err: err}
	}
}

// ActiveTab returns the tab currently shown
func (m Model) ActiveTab() Tab {
	return m.activeTab
}

// renderHelpOverlay renders the keyboard shortcuts for the active view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.DialogTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabWeek:
		help.WriteString(m.styles.StatLabel.Render("Week:"))
		help.WriteString("\n")
		help.WriteString("  ←↓↑→/hjkl  Move between cells\n")
		help.WriteString("  Enter/i    Edit cell\n")
		help.WriteString("  Tab        Next field while editing\n")
		help.WriteString("  Esc        Undo edit\n")
		help.WriteString("  c          Copy weekly total\n")
		help.WriteString("  s          Load sample data\n")
		help.WriteString("  r          Reset all days\n")
	case TabDurations:
		help.WriteString(m.styles.StatLabel.Render("Durations:"))
		help.WriteString("\n")
		help.WriteString("  Enter/i    Edit text\n")
		help.WriteString("  Esc        Stop editing\n")
		help.WriteString("  c          Copy total\n")
		help.WriteString("  e          Load example\n")
		help.WriteString("  x          Clear\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  w          Toggle week start day\n")
		help.WriteString("  f          Toggle copy format\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Quick tips:"))
	help.WriteString("\n")
	for _, tip := range quickTips {
		help.WriteString("  • " + tip + "\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.Muted.Render("Press ? to close"))

	helpBox := m.styles.Dialog.Render(help.String())
	return m.styles.App.Render(lipgloss.Place(m.width, max(m.height-2, 0), lipgloss.Center, lipgloss.Center, helpBox))
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
