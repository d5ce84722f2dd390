package logger

import (
	"context"
	"log/slog"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// With stores a child logger carrying extra fields in the context.
func With(ctx context.Context, fields ...any) context.Context {
	l := From(ctx).With(fields...)
	return context.WithValue(ctx, loggerKey, l)
}

// WithTraceID tags the context logger with a trace id so every log line
// for one request can be correlated.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return With(ctx, "trace_id", traceID)
}

// From returns the logger stored in context, falling back to the default.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
