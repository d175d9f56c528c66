// Package ctxlog carries a *slog.Logger through context.Context.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported so no other package can collide with it.
type key struct{}

var loggerKey = key{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default()
// when there is none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}
