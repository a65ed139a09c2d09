package logging

import (
	"io"
	"log/slog"

	"github.com/napolitain/meadsim/internal/config"
)

// New builds a slog logger from the logging config
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Init builds the logger and installs it as the slog default
func Init(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	logger := New(cfg, w)
	slog.SetDefault(logger)

	logger.Debug("Logger initialized",
		"level", cfg.Level,
		"format", cfg.Format,
	)
	return logger
}

// ParseLevel maps a config level to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
