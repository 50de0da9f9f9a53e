package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/xolan/tally/internal/clipboard"
	"github.com/xolan/tally/internal/duration"
	"github.com/xolan/tally/internal/week"
)

// WeekService summarizes weekly time sheets.
type WeekService struct {
	copier *clipboard.Copier
	logger *slog.Logger
	config *ConfigService
}

// NewWeekService creates a new WeekService
func NewWeekService(copier *clipboard.Copier, cfg *ConfigService, logger *slog.Logger) *WeekService {
	return &WeekService{copier: copier, config: cfg, logger: logger}
}

// Days returns the days in display order according to week_start_day.
func (s *WeekService) Days() []week.Day {
	return week.Ordered(s.config.Get().WeekStartDay)
}

// Summarize reduces w into totals, working days and average.
func (s *WeekService) Summarize(ctx context.Context, w *week.Week) week.Summary {
	started := time.Now()
	summary := week.Summarize(w)
	observe(ctx, s.logger, "week.summarize", started, nil,
		"working_days", summary.WorkingDays, "total_seconds", summary.TotalSeconds)
	return summary
}

// CopyTotal copies the weekly total using the configured copy format and
// returns the copied text.
func (s *WeekService) CopyTotal(ctx context.Context, summary week.Summary) (string, error) {
	started := time.Now()
	text := duration.Format(summary.TotalSeconds, s.config.Get().CopyFormat)
	err := s.copier.Copy(ctx, text)
	observe(ctx, s.logger, "week.copy", started, err)
	return text, err
}
