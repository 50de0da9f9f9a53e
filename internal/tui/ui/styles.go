package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style
	Panel     lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Time sheet
	Header       lipgloss.Style
	DayLabel     lipgloss.Style
	Cell         lipgloss.Style
	CellSelected lipgloss.Style
	Net          lipgloss.Style
	RowSelected  lipgloss.Style

	// Totals
	Total     lipgloss.Style
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Muted     lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// palette maps semantic roles to colors.
type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	accent    lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	success   lipgloss.TerminalColor
	warning   lipgloss.TerminalColor
	errColor  lipgloss.TerminalColor
	fg        lipgloss.TerminalColor
	bg        lipgloss.TerminalColor
	highlight lipgloss.TerminalColor
}

// DefaultStyles returns the styles used without a theme registry
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:   lipgloss.Color("99"),  // Purple
		secondary: lipgloss.Color("39"),  // Cyan
		accent:    lipgloss.Color("212"), // Pink
		muted:     lipgloss.Color("240"), // Gray
		success:   lipgloss.Color("82"),  // Green
		warning:   lipgloss.Color("214"), // Orange
		errColor:  lipgloss.Color("196"), // Red
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
		highlight: lipgloss.Color("237"),
	})
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// This maps theme colors to semantic UI elements:
// - Primary: Purple (tabs, titles, selected cell border)
// - Secondary: Cyan (day labels, keys)
// - Accent: BrightPurple (net times, totals)
// - Muted: BrightBlack (inactive elements, labels)
// - Success/Warning/Error: Green/Yellow/Red
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		accent:    r.BrightPurple(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		errColor:  r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
		highlight: r.BrightBlack(),
	})
}

func newStyles(p palette) Styles {
	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),

		// Tab bar
		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		// Content area
		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Padding(0, 2),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		// Time sheet
		Header: lipgloss.NewStyle().
			Foreground(p.muted).
			Bold(true),
		DayLabel: lipgloss.NewStyle().
			Foreground(p.secondary).
			Width(12),
		Cell: lipgloss.NewStyle().
			Foreground(p.fg).
			Align(lipgloss.Right),
		CellSelected: lipgloss.NewStyle().
			Foreground(p.primary).
			Background(p.highlight).
			Bold(true).
			Align(lipgloss.Right),
		Net: lipgloss.NewStyle().
			Foreground(p.accent).
			Align(lipgloss.Right),
		RowSelected: lipgloss.NewStyle().
			Background(p.highlight).
			Bold(true),

		// Totals
		Total: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(p.muted),

		// Help
		HelpKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.muted),

		// Input
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.primary).
			Padding(0, 1),

		// Dialog
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			Width(60),
		DialogTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		// Errors and warnings
		Error: lipgloss.NewStyle().
			Foreground(p.errColor),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
	}
}
