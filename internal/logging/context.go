package logging

import (
	"context"
	"log/slog"

	slogctx "github.com/veqryn/slog-context"
)

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return slogctx.NewCtx(ctx, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	return slogctx.FromCtx(ctx)
}
