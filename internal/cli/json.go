package cli

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/xolan/tally/internal/duration"
	"github.com/xolan/tally/internal/week"
)

// SumReport is the JSON form of a duration sum.
type SumReport struct {
	Records        []duration.Record `json:"records"`
	Total          string            `json:"total"`
	TotalSeconds   int               `json:"total_seconds"`
	Count          int               `json:"count"`
	AverageMinutes int               `json:"average_minutes"`
}

// NewSumReport builds a SumReport from result.
func NewSumReport(result duration.SumResult) SumReport {
	return SumReport{
		Records:        result.Records,
		Total:          result.Formatted,
		TotalSeconds:   result.TotalSeconds,
		Count:          result.Count,
		AverageMinutes: result.AverageMinutes(),
	}
}

// DayReport is one day of a WeekReport.
type DayReport struct {
	Day string `json:"day"`
	week.TimeInput
	UntrackedSeconds int    `json:"untracked_seconds"`
	Net              string `json:"net"`
	NetSeconds       int    `json:"net_seconds"`
}

// WeekReport is the JSON form of a weekly summary.
type WeekReport struct {
	Days             []DayReport `json:"days"`
	Total            string      `json:"total"`
	TotalSeconds     int         `json:"total_seconds"`
	TotalHours       string      `json:"total_hours"`
	WorkingDays      int         `json:"working_days"`
	Average          string      `json:"average"`
	AverageSeconds   int         `json:"average_seconds"`
	UntrackedSeconds int         `json:"untracked_seconds"`
}

// NewWeekReport builds a WeekReport listing days in the given order.
func NewWeekReport(wk *week.Week, summary week.Summary, days []week.Day) WeekReport {
	report := WeekReport{
		Days:             make([]DayReport, 0, len(days)),
		Total:            summary.Total.String(),
		TotalSeconds:     summary.TotalSeconds,
		TotalHours:       duration.FormatDecimalHours(summary.TotalSeconds),
		WorkingDays:      summary.WorkingDays,
		Average:          summary.Average.String(),
		AverageSeconds:   summary.AverageSeconds,
		UntrackedSeconds: summary.UntrackedSeconds,
	}
	for _, d := range days {
		in := wk.Get(d)
		row := wk.Row(d)
		report.Days = append(report.Days, DayReport{
			Day:              d.String(),
			TimeInput:        in,
			UntrackedSeconds: in.UntrackedSeconds(),
			Net:              row.HMS.String(),
			NetSeconds:       row.TotalSeconds,
		})
	}
	return report
}

// ParseReport is the JSON form of one parsed duration string.
type ParseReport struct {
	Input     string `json:"input"`
	Seconds   int    `json:"seconds"`
	Formatted string `json:"formatted"`
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
