package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/xolan/tally/internal/duration"
	"github.com/xolan/tally/internal/service"
	"github.com/xolan/tally/internal/tui/ui"
)

const (
	minTextareaWidth  = 24
	minTextareaHeight = 6
)

// DurationsModel is the model for the free-text duration sum view
type DurationsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int

	textarea textarea.Model
	result   duration.SumResult

	copy copyState
}

// NewDurationsModel creates a new durations view model
func NewDurationsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) DurationsModel {
	ta := textarea.New()
	ta.Placeholder = "01h 30m 45s\n02h 15m 30s"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(32)
	ta.SetHeight(10)

	m := DurationsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		textarea: ta,
		copy:     copyState{source: sourceDurations},
	}
	m.recalculate()
	return m
}

// Init implements tea.Model
func (m DurationsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m DurationsModel) Update(msg tea.Msg) (DurationsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.textarea.Focused() {
			if key.Matches(msg, m.keys.Back) {
				m.textarea.Blur()
				return m, nil
			}
			before := m.textarea.Value()
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			if m.textarea.Value() != before {
				m.recalculate()
			}
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Edit):
			return m, m.textarea.Focus()
		case key.Matches(msg, m.keys.Copy):
			result := m.result
			return m, m.copy.request(func(ctx context.Context) (string, error) {
				return m.services.Sum.CopyTotal(ctx, result)
			})
		case key.Matches(msg, m.keys.Example):
			m.SetText(m.services.Sum.Example())
		case key.Matches(msg, m.keys.Clear):
			m.SetText("")
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if cmd, ok := m.copy.update(msg); ok {
		return m, cmd
	}

	if m.textarea.Focused() {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
	return m, nil
}

// SetText replaces the input and recomputes the total.
func (m *DurationsModel) SetText(text string) {
	m.textarea.SetValue(text)
	m.recalculate()
}

// Result returns the current sum.
func (m DurationsModel) Result() duration.SumResult {
	return m.result
}

func (m *DurationsModel) recalculate() {
	m.result = m.services.Sum.Calculate(context.Background(), m.textarea.Value())
	m.copy.clear()
}

// View implements tea.Model
func (m DurationsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Duration Sum"))
	b.WriteString("\n")

	inputStyle := m.styles.Input
	if m.textarea.Focused() {
		inputStyle = m.styles.InputFocused
	}
	input := inputStyle.Render(m.textarea.View())
	results := m.renderResults()

	if m.width >= lipgloss.Width(input)+lipgloss.Width(results)+4 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, input, "    ", results))
	} else {
		b.WriteString(input)
		b.WriteString("\n")
		b.WriteString(results)
	}
	b.WriteString("\n\n")

	if m.textarea.Focused() {
		b.WriteString(keyHints(m.styles, "esc", "done"))
	} else {
		b.WriteString(keyHints(m.styles, "enter", "edit", "c", "copy", "e", "example", "x", "clear"))
	}

	return b.String()
}

func (m DurationsModel) renderResults() string {
	var b strings.Builder
	r := m.result

	b.WriteString(m.styles.StatLabel.Render("Total"))
	b.WriteString("\n")
	b.WriteString(m.styles.Total.Render(r.Formatted))
	b.WriteString("\n\n")
	b.WriteString(statLine(m.styles, "Entries", fmt.Sprint(r.Count)))
	b.WriteString(statLine(m.styles, "Average", fmt.Sprintf("%d %s", r.AverageMinutes(), pluralize("minute", r.AverageMinutes()))))

	if r.Count > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Header.Render("Individual durations"))
		b.WriteString("\n")

		limit := len(r.Records)
		if maxRows := m.height - 12; maxRows > 0 && limit > maxRows {
			limit = maxRows
		}
		for _, rec := range r.Records[:limit] {
			original := runewidth.Truncate(rec.Original, 18, "…")
			b.WriteString(runewidth.FillRight(original, 18))
			b.WriteString(" → ")
			b.WriteString(m.styles.Net.Render(rec.Formatted))
			b.WriteString("\n")
		}
		if hidden := len(r.Records) - limit; hidden > 0 {
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("… %d more", hidden)))
			b.WriteString("\n")
		}
	}

	if ack := m.copy.view(m.styles); ack != "" {
		b.WriteString("\n")
		b.WriteString(ack)
	}

	return m.styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// SetSize sets the view dimensions
func (m *DurationsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.textarea.SetWidth(max(width/2-8, minTextareaWidth))
	m.textarea.SetHeight(max(height-8, minTextareaHeight))
}

// IsInputMode reports whether the text area has focus
func (m DurationsModel) IsInputMode() bool {
	return m.textarea.Focused()
}
