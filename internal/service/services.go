package service

import (
	"io"
	"log/slog"

	"github.com/xolan/tally/internal/clipboard"
	"github.com/xolan/tally/internal/config"
	"github.com/xolan/tally/internal/logging"
)

// Services holds all service instances used by the application
type Services struct {
	Sum       *SumService
	Week      *WeekService
	Config    *ConfigService
	Clipboard *clipboard.Copier
	Logger    *slog.Logger
}

// NewServices creates a new Services instance using the default config path
// and the system clipboard. Log records go to w at the configured level.
func NewServices(w io.Writer) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(configPath, cfg, clipboard.System{}, logging.New(w, cfg.LogLevel)), nil
}

// NewServicesWithPaths creates a new Services instance with a custom config
// path and clipboard writer (useful for testing)
func NewServicesWithPaths(configPath string, cfg config.Config, writer clipboard.Writer, logger *slog.Logger) *Services {
	if logger == nil {
		logger = logging.Discard()
	}
	configService := NewConfigService(configPath, cfg)
	copier := clipboard.NewCopier(writer, logger)

	return &Services{
		Sum:       NewSumService(copier, configService, logger),
		Week:      NewWeekService(copier, configService, logger),
		Config:    configService,
		Clipboard: copier,
		Logger:    logger,
	}
}
