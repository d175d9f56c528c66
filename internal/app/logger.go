package app

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/crucible/internal/config"
)

// newLogger builds the run's logger from the validated configuration. Every
// record carries the grid path so logs from several runs can be told apart.
// The global slog logger is left untouched.
func newLogger(cfg *config.Config, logW io.Writer) *slog.Logger {
	var level slog.Level
	// Validate already restricted LogLevel to names slog understands.
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(logW, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(logW, opts)
	}

	return slog.New(handler).With("grid", cfg.GridPath)
}
