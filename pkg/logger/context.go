package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// FromContext returns the request-scoped logger, falling back to the
// package default when the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return l
	}
	return L()
}

// ContextWith derives a context whose logger carries the given attrs in
// addition to whatever the parent logger already has.
func ContextWith(ctx context.Context, attrs ...any) context.Context {
	return context.WithValue(ctx, contextKey{}, FromContext(ctx).With(attrs...))
}
