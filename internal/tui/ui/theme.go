package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is the theme used when the config names none, or one that
// does not exist
const DefaultTheme = "dracula"

// ThemeInfo names one selectable theme
type ThemeInfo struct {
	ID          string
	DisplayName string
}

// ThemeProvider owns the bubbletint registry behind the TUI colors
type ThemeProvider struct {
	registry *tint.Registry
	themes   []ThemeInfo
}

// NewThemeProvider creates a provider showing the theme with id initial.
func NewThemeProvider(initial string) *ThemeProvider {
	tints := tint.DefaultTints()

	fallback := lookupTint(tints, DefaultTheme)
	if fallback == nil && len(tints) > 0 {
		fallback = tints[0]
	}

	tp := &ThemeProvider{
		registry: tint.NewRegistry(fallback, tints...),
		themes:   make([]ThemeInfo, 0, len(tints)),
	}
	for _, t := range tints {
		tp.themes = append(tp.themes, ThemeInfo{ID: t.ID(), DisplayName: t.DisplayName()})
	}
	sort.Slice(tp.themes, func(i, j int) bool { return tp.themes[i].ID < tp.themes[j].ID })

	if initial != "" {
		tp.registry.SetTintID(initial)
	}
	return tp
}

func lookupTint(tints []tint.Tint, id string) tint.Tint {
	for _, t := range tints {
		if t.ID() == id {
			return t
		}
	}
	return nil
}

// SetTheme switches to the theme with the given id. It reports false, and
// keeps the current theme, when the id is unknown.
func (tp *ThemeProvider) SetTheme(id string) bool {
	return tp.registry.SetTintID(id)
}

// CurrentName returns the id of the current theme.
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the display name of the current theme.
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// Themes lists every theme sorted by id.
func (tp *ThemeProvider) Themes() []ThemeInfo {
	return tp.themes
}

// Styles builds the TUI styles from the current theme's palette.
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
