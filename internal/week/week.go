// Package week models a seven-day time sheet and reduces it into weekly
// totals, averages and working-day counts.
package week

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xolan/tally/internal/duration"
)

// Day identifies a day of the week. Monday is the zero value so that a
// fresh Week iterates in ISO order.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DayCount is the fixed number of entries in a Week.
const DayCount = 7

// DayInfo holds display metadata for a Day.
type DayInfo struct {
	ID    string
	Label string
	Abbr  string
}

var days = [DayCount]DayInfo{
	{ID: "monday", Label: "Monday", Abbr: "Mon"},
	{ID: "tuesday", Label: "Tuesday", Abbr: "Tue"},
	{ID: "wednesday", Label: "Wednesday", Abbr: "Wed"},
	{ID: "thursday", Label: "Thursday", Abbr: "Thu"},
	{ID: "friday", Label: "Friday", Abbr: "Fri"},
	{ID: "saturday", Label: "Saturday", Abbr: "Sat"},
	{ID: "sunday", Label: "Sunday", Abbr: "Sun"},
}

// Info returns the display metadata for d.
func (d Day) Info() DayInfo {
	return days[d]
}

// String returns the day's id, e.g. "monday".
func (d Day) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return days[d].ID
}

// AllDays returns the days in Monday-first order.
func AllDays() []Day {
	return Ordered("monday")
}

// Ordered returns all days starting from startDay ("monday" or "sunday").
// Any other value yields Monday-first order.
func Ordered(startDay string) []Day {
	out := make([]Day, 0, DayCount)
	if strings.EqualFold(startDay, "sunday") {
		out = append(out, Sunday)
		for d := Monday; d < Sunday; d++ {
			out = append(out, d)
		}
		return out
	}
	for d := Monday; d <= Sunday; d++ {
		out = append(out, d)
	}
	return out
}

// ParseDay resolves a full day name or its three-letter abbreviation,
// case-insensitively.
func ParseDay(s string) (Day, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, info := range days {
		if name == info.ID || name == strings.ToLower(info.Abbr) {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day %q: expected monday-sunday or mon-sun", s)
}

// Field names an editable column of a TimeInput.
type Field int

const (
	FieldHours Field = iota
	FieldMinutes
	FieldSeconds
	FieldUntracked
)

// FieldCount is the number of editable fields per day.
const FieldCount = 4

var fieldNames = [FieldCount]string{"hours", "minutes", "seconds", "untracked"}

func (f Field) String() string {
	if f < FieldHours || f > FieldUntracked {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// TimeInput is the time entered for a single day.
type TimeInput struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
	// Untracked is free text deducted from the day, e.g. "30m" or "0:45".
	Untracked string `json:"untracked,omitempty"`
}

// TrackedSeconds is the entered time before any deduction.
func (t TimeInput) TrackedSeconds() int {
	return t.Hours*3600 + t.Minutes*60 + t.Seconds
}

// UntrackedSeconds is the parsed deduction.
func (t TimeInput) UntrackedSeconds() int {
	return duration.ParseLoose(t.Untracked)
}

// Week is the seven-day time sheet. The zero value is an empty week.
type Week struct {
	entries [DayCount]TimeInput
}

// New returns an empty week.
func New() *Week {
	return &Week{}
}

// Sample returns a week with 8h logged on every day.
func Sample() *Week {
	w := New()
	for d := Monday; d <= Sunday; d++ {
		w.entries[d] = TimeInput{Hours: 8}
	}
	return w
}

// Get returns the entry for d.
func (w *Week) Get(d Day) TimeInput {
	return w.entries[d]
}

// Put replaces the entry for d, clamping its numeric fields.
func (w *Week) Put(d Day, t TimeInput) {
	t.Hours = clamp(FieldHours, t.Hours)
	t.Minutes = clamp(FieldMinutes, t.Minutes)
	t.Seconds = clamp(FieldSeconds, t.Seconds)
	w.entries[d] = t
}

// Set assigns a numeric field. Hours are clamped to [0,duration.MaxValue];
// minutes and seconds to [0,59]. For FieldUntracked, value is a number of
// minutes and is stored as text such as "15m".
func (w *Week) Set(d Day, f Field, value int) {
	e := &w.entries[d]
	switch f {
	case FieldHours:
		e.Hours = clamp(f, value)
	case FieldMinutes:
		e.Minutes = clamp(f, value)
	case FieldSeconds:
		e.Seconds = clamp(f, value)
	case FieldUntracked:
		e.Untracked = strconv.Itoa(max(value, 0)) + "m"
	}
}

// SetText assigns a field from user-typed text. Numeric fields default to
// zero when the text is not a number; the untracked field keeps the raw text.
func (w *Week) SetText(d Day, f Field, text string) {
	if f == FieldUntracked {
		w.entries[d].Untracked = text
		return
	}
	w.Set(d, f, parseNumber(text))
}

// Text returns the current value of a field as editable text.
func (w *Week) Text(d Day, f Field) string {
	e := w.entries[d]
	switch f {
	case FieldHours:
		return strconv.Itoa(e.Hours)
	case FieldMinutes:
		return strconv.Itoa(e.Minutes)
	case FieldSeconds:
		return strconv.Itoa(e.Seconds)
	case FieldUntracked:
		return e.Untracked
	}
	return ""
}

// Reset clears every day.
func (w *Week) Reset() {
	w.entries = [DayCount]TimeInput{}
}

// Row returns the net time for d: tracked minus untracked, floored at zero.
func (w *Week) Row(d Day) DayRow {
	e := w.entries[d]
	net := e.TrackedSeconds() - e.UntrackedSeconds()
	if net < 0 {
		net = 0
	}
	return DayRow{
		Day:          d,
		HMS:          duration.FromSeconds(net),
		TotalSeconds: net,
	}
}

func clamp(f Field, v int) int {
	if v < 0 {
		return 0
	}
	if f != FieldHours && v > 59 {
		return 59
	}
	return min(v, duration.MaxValue)
}

// parseNumber reads an integer, accepting decimals by truncation.
// Anything unreadable, or beyond duration.MaxValue, is zero.
func parseNumber(text string) int {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n > duration.MaxValue || n < -duration.MaxValue {
			return 0
		}
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f <= duration.MaxValue && f >= -duration.MaxValue {
		return int(f)
	}
	return 0
}
