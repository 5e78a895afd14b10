// Package wire assembles the application object graph.
package wire

import (
	"io"
	"log/slog"

	"github.com/sevigo/code-review-agent/internal/config"
	"github.com/sevigo/code-review-agent/internal/logger"
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogOutput(cfg logger.Config) (io.Writer, func(), error) {
	return logger.OpenOutput(cfg)
}

func provideSlogLogger(cfg logger.Config, w io.Writer) *slog.Logger {
	l := logger.NewLogger(cfg, w)
	slog.SetDefault(l)
	return l
}
