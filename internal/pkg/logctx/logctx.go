// Package logctx carries structured log attributes through a context.Context
// so that adapters deep in a call chain can tag their records with the
// identifiers of the operation they serve.
package logctx

import (
	"context"
	"log/slog"
)

type contextKey string

const attrsKey contextKey = "log_attrs"

// WithAttrs returns a copy of ctx carrying attrs in addition to any attributes
// already attached. Earlier attributes come first.
//
// Example:
//
//	ctx = logctx.WithAttrs(ctx, slog.String("order_id", id.String()))
//	logger.InfoContext(ctx, "narration", logctx.Args(ctx)...)
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}

	current := Attrs(ctx)
	merged := make([]slog.Attr, 0, len(current)+len(attrs))
	merged = append(merged, current...)
	merged = append(merged, attrs...)

	return context.WithValue(ctx, attrsKey, merged)
}

// Attrs returns the attributes attached to ctx, or nil when there are none.
func Attrs(ctx context.Context) []slog.Attr {
	attrs, _ := ctx.Value(attrsKey).([]slog.Attr)
	return attrs
}

// Args returns the attributes attached to ctx in the form accepted by the
// variadic args of slog.Logger methods.
func Args(ctx context.Context) []any {
	attrs := Attrs(ctx)
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	return args
}
