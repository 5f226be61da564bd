package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"contactbook/internal/platform/config"
)

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return slog.LevelWarn, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// New builds a slog logger. Logs go to stderr unless a file is configured so
// that stdout stays reserved for the console conversation. Unparseable options
// fall back to defaults with a warning.
func New(cfg config.LogConfig) *slog.Logger {
	return newWithOutput(cfg, os.Stderr)
}

func newWithOutput(cfg config.LogConfig, stderr io.Writer) *slog.Logger {
	lvl, ok := level(cfg.Level)
	if !ok {
		raw := cfg.Level
		cfg.Level = ""
		logger := newWithOutput(cfg, stderr)
		logger.Warn("could not parse logger level", "level", raw)
		return logger
	}
	opts := slog.HandlerOptions{Level: lvl}

	var output io.Writer
	switch cfg.File {
	case "", "-":
		output = stderr
	case os.DevNull:
		return slog.New(slog.DiscardHandler)
	default:
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			cfg.File = ""
			logger := newWithOutput(cfg, stderr)
			logger.Warn("could not open logger file", "err", err)
			return logger
		}
		output = f
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(output, &opts))
	case "text", "":
		return slog.New(slog.NewTextHandler(output, &opts))
	default:
		cfg.Format = "text"
		logger := newWithOutput(cfg, stderr)
		logger.Warn("could not parse logger format")
		return logger
	}
}
