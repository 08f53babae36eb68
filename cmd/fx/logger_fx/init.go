package logger_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"mcstudio/internal/config"
	"mcstudio/pkg/logger"
)

var Module = fx.Provide(provideLogger)

func provideLogger(cfg *config.Config) *zap.Logger {
	return logger.New(cfg.Logging.Level, cfg.Logging.Format)
}
