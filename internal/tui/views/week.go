package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/xolan/tally/internal/duration"
	"github.com/xolan/tally/internal/service"
	"github.com/xolan/tally/internal/tui/ui"
	"github.com/xolan/tally/internal/week"
)

// column widths of the time sheet
const (
	dayWidth       = 12
	hoursWidth     = 7
	minSecWidth    = 6
	untrackedWidth = 12
	netWidth       = 14
)

// WeekModel is the model for the weekly time sheet view
type WeekModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int

	week    *week.Week
	summary week.Summary

	// cursor: row indexes the display order, col is a week.Field
	row int
	col week.Field

	editing  bool
	input    textinput.Model
	original string

	copy copyState
}

// NewWeekModel creates a new week view model with an empty week
func NewWeekModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) WeekModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 16
	ti.Width = untrackedWidth - 2

	m := WeekModel{
		services: services,
		styles:   styles,
		keys:     keys,
		week:     week.New(),
		input:    ti,
		copy:     copyState{source: sourceWeek},
	}
	m.recalculate()
	return m
}

// Init implements tea.Model
func (m WeekModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m WeekModel) Update(msg tea.Msg) (WeekModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditing(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			m.row = max(m.row-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.row = min(m.row+1, week.DayCount-1)
		case key.Matches(msg, m.keys.Left):
			m.col = max(m.col-1, week.FieldHours)
		case key.Matches(msg, m.keys.Right):
			m.col = min(m.col+1, week.FieldUntracked)
		case key.Matches(msg, m.keys.Edit):
			return m, m.startEditing()
		case key.Matches(msg, m.keys.Copy):
			summary := m.summary
			return m, m.copy.request(func(ctx context.Context) (string, error) {
				return m.services.Week.CopyTotal(ctx, summary)
			})
		case key.Matches(msg, m.keys.Reset):
			m.week.Reset()
			m.recalculate()
		case key.Matches(msg, m.keys.Sample):
			m.week = week.Sample()
			m.recalculate()
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if cmd, ok := m.copy.update(msg); ok {
		return m, cmd
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleEditing handles key events while a cell is being edited. Every
// keystroke is applied to the week so the totals follow the typing.
func (m WeekModel) handleEditing(msg tea.KeyMsg) (WeekModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		m.stopEditing()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.week.SetText(m.day(), m.col, m.original)
		m.recalculate()
		m.stopEditing()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.stopEditing()
		m.col++
		if m.col > week.FieldUntracked {
			m.col = week.FieldHours
			m.row = (m.row + 1) % week.DayCount
		}
		return m, m.startEditing()

	case key.Matches(msg, m.keys.PrevField):
		m.stopEditing()
		m.col--
		if m.col < week.FieldHours {
			m.col = week.FieldUntracked
			m.row = (m.row - 1 + week.DayCount) % week.DayCount
		}
		return m, m.startEditing()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.week.SetText(m.day(), m.col, m.input.Value())
	m.recalculate()
	return m, cmd
}

func (m *WeekModel) startEditing() tea.Cmd {
	m.editing = true
	m.original = m.week.Text(m.day(), m.col)
	value := m.original
	if value == "0" {
		value = ""
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	if m.col == week.FieldUntracked {
		m.input.Placeholder = "30m"
	} else {
		m.input.Placeholder = "0"
	}
	return m.input.Focus()
}

func (m *WeekModel) stopEditing() {
	m.editing = false
	m.input.Blur()
}

func (m *WeekModel) recalculate() {
	m.summary = m.services.Week.Summarize(context.Background(), m.week)
	m.copy.clear()
}

// day is the day under the cursor.
func (m WeekModel) day() week.Day {
	return m.services.Week.Days()[m.row]
}

// Week returns the time sheet being edited.
func (m WeekModel) Week() *week.Week {
	return m.week
}

// Summary returns the current weekly summary.
func (m WeekModel) Summary() week.Summary {
	return m.summary
}

// View implements tea.Model
func (m WeekModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Weekly Time"))
	b.WriteString("\n")

	table := m.renderTable()
	panel := m.renderSummary()
	if m.width >= lipgloss.Width(table)+lipgloss.Width(panel)+4 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, table, "    ", panel))
	} else {
		b.WriteString(table)
		b.WriteString("\n")
		b.WriteString(panel)
	}
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(keyHints(m.styles, "enter", "done", "tab", "next field", "esc", "undo"))
	} else {
		b.WriteString(keyHints(m.styles, "enter", "edit", "c", "copy", "s", "sample", "r", "reset"))
	}

	return b.String()
}

func (m WeekModel) renderTable() string {
	var b strings.Builder

	header := m.styles.Header
	b.WriteString(header.Width(dayWidth).Render("  Day"))
	b.WriteString(header.Width(hoursWidth).Align(lipgloss.Right).Render("Hours"))
	b.WriteString(header.Width(minSecWidth).Align(lipgloss.Right).Render("Min"))
	b.WriteString(header.Width(minSecWidth).Align(lipgloss.Right).Render("Sec"))
	b.WriteString(header.Width(untrackedWidth).Align(lipgloss.Right).Render("Untracked"))
	b.WriteString(header.Width(netWidth).Align(lipgloss.Right).Render("Net"))
	b.WriteString("\n")

	for i, d := range m.services.Week.Days() {
		label := "  " + d.Info().Label
		if i == m.row {
			label = "▸ " + d.Info().Label
		}
		b.WriteString(m.styles.DayLabel.Width(dayWidth).Render(label))
		b.WriteString(m.renderCell(i, d, week.FieldHours, hoursWidth))
		b.WriteString(m.renderCell(i, d, week.FieldMinutes, minSecWidth))
		b.WriteString(m.renderCell(i, d, week.FieldSeconds, minSecWidth))
		b.WriteString(m.renderCell(i, d, week.FieldUntracked, untrackedWidth))

		row := m.week.Row(d)
		net := row.HMS.String()
		if row.TotalSeconds == 0 {
			b.WriteString(m.styles.Muted.Width(netWidth).Align(lipgloss.Right).Render(net))
		} else {
			b.WriteString(m.styles.Net.Width(netWidth).Render(net))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m WeekModel) renderCell(rowIdx int, d week.Day, f week.Field, width int) string {
	selected := rowIdx == m.row && f == m.col
	if selected && m.editing {
		return m.styles.CellSelected.Width(width).Render(m.input.View())
	}

	value := m.week.Text(d, f)
	if f == week.FieldUntracked && value == "" {
		value = "-"
	}
	value = runewidth.Truncate(value, width-1, "…")

	style := m.styles.Cell
	if selected {
		style = m.styles.CellSelected
	}
	return style.Width(width).Render(value)
}

func (m WeekModel) renderSummary() string {
	var b strings.Builder
	s := m.summary

	b.WriteString(m.styles.StatLabel.Render("Weekly total"))
	b.WriteString("\n")
	b.WriteString(m.styles.Total.Render(s.Total.String()))
	b.WriteString("\n\n")
	b.WriteString(statLine(m.styles, "Working days", fmtRatio(s.WorkingDays, week.DayCount)))
	b.WriteString(statLine(m.styles, "Average per day", duration.FormatHM(s.AverageSeconds)))
	b.WriteString(statLine(m.styles, "Decimal hours", duration.FormatDecimalHours(s.TotalSeconds)))
	if s.UntrackedSeconds > 0 {
		b.WriteString(statLine(m.styles, "Untracked", duration.FormatCompact(s.UntrackedSeconds)))
	}
	if ack := m.copy.view(m.styles); ack != "" {
		b.WriteString("\n")
		b.WriteString(ack)
	}

	return m.styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// SetSize sets the view dimensions
func (m *WeekModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode reports whether a cell is being edited
func (m WeekModel) IsInputMode() bool {
	return m.editing
}
