package service

import (
	"context"
	"log/slog"
	"time"
)

// observe logs one service use case with its duration and outcome.
// Failures are logged at error level, successes at debug.
func observe(ctx context.Context, logger *slog.Logger, name string, started time.Time, err error, fields ...any) {
	attrs := make([]any, 0, 6+len(fields))
	attrs = append(attrs,
		"use_case", name,
		"duration_ms", time.Since(started).Milliseconds(),
		"success", err == nil,
	)
	attrs = append(attrs, fields...)
	if err != nil {
		attrs = append(attrs, "error", err.Error())
		logger.ErrorContext(ctx, "service_use_case", attrs...)
		return
	}
	logger.DebugContext(ctx, "service_use_case", attrs...)
}
