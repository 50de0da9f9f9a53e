package duration

import (
	"fmt"
	"strings"
)

// HMS is a duration broken down into hours, minutes and seconds.
// Minutes and seconds are always in [0,59]; hours are unbounded.
type HMS struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// FromSeconds splits a second count using floor division and modulo by
// 3600 and 60. Negative input is treated as zero.
func FromSeconds(total int) HMS {
	if total < 0 {
		total = 0
	}
	return HMS{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// TotalSeconds converts h back into a second count.
func (h HMS) TotalSeconds() int {
	return h.Hours*3600 + h.Minutes*60 + h.Seconds
}

// String returns the padded form, e.g. "01h 30m 45s".
func (h HMS) String() string {
	return fmt.Sprintf("%02dh %02dm %02ds", h.Hours, h.Minutes, h.Seconds)
}

// FormatHMS formats seconds as "01h 30m 45s". This is the form copied to the
// clipboard and shown for totals.
func FormatHMS(seconds int) string {
	return FromSeconds(seconds).String()
}

// FormatHM formats seconds as "08h 00m", dropping the seconds.
func FormatHM(seconds int) string {
	h := FromSeconds(seconds)
	return fmt.Sprintf("%02dh %02dm", h.Hours, h.Minutes)
}

// FormatCompact formats seconds without padding and omits zero units.
// Examples: "1h 30m", "45s", "2h 5s". Zero is "0s".
func FormatCompact(seconds int) string {
	h := FromSeconds(seconds)

	var parts []string
	if h.Hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h.Hours))
	}
	if h.Minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", h.Minutes))
	}
	if h.Seconds > 0 {
		parts = append(parts, fmt.Sprintf("%ds", h.Seconds))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}

// FormatDecimalHours formats seconds as fractional hours with one decimal,
// e.g. "56.0h".
func FormatDecimalHours(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%.1fh", float64(seconds)/3600)
}

// Format renders seconds in the named style: "compact" or "padded".
// Unknown styles fall back to padded.
func Format(seconds int, style string) string {
	if style == StyleCompact {
		return FormatCompact(seconds)
	}
	return FormatHMS(seconds)
}

// Format styles accepted by Format.
const (
	StylePadded  = "padded"
	StyleCompact = "compact"
)
