package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/xolan/tally/internal/clipboard"
	"github.com/xolan/tally/internal/duration"
)

// SumService totals free-text duration lists.
type SumService struct {
	copier *clipboard.Copier
	logger *slog.Logger
	config *ConfigService
}

// NewSumService creates a new SumService
func NewSumService(copier *clipboard.Copier, cfg *ConfigService, logger *slog.Logger) *SumService {
	return &SumService{copier: copier, config: cfg, logger: logger}
}

// Calculate parses text and returns the per-line records and total.
func (s *SumService) Calculate(ctx context.Context, text string) duration.SumResult {
	started := time.Now()
	result := duration.Sum(text)
	observe(ctx, s.logger, "sum.calculate", started, nil, "count", result.Count, "total_seconds", result.TotalSeconds)
	return result
}

// Example returns the sample input.
func (s *SumService) Example() string {
	return duration.Example
}

// CopyTotal copies the total of result using the configured copy format and
// returns the copied text.
func (s *SumService) CopyTotal(ctx context.Context, result duration.SumResult) (string, error) {
	started := time.Now()
	text := duration.Format(result.TotalSeconds, s.config.Get().CopyFormat)
	err := s.copier.Copy(ctx, text)
	observe(ctx, s.logger, "sum.copy", started, err)
	return text, err
}
