package config

import (
	"io"

	"golang.org/x/exp/slog"
)

// SetupLogger installs a text slog handler writing to w as the default logger
func SetupLogger(cfg *Config, w io.Writer) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return logger
}
