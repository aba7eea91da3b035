package logging

import (
	"context"
	"log/slog"
	"strconv"
)

type ctxKey struct{}

var defaultLogger = slog.Default()

// FromContext returns the request-scoped logger, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// With returns ctx whose logger carries the extra attrs.
func With(ctx context.Context, attrs ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(attrs...))
}

// WithRequestID tags the context logger with request_id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return With(ctx, slog.String("request_id", requestID))
}

// WithTraceID tags the context logger with trace_id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return With(ctx, slog.String("trace_id", traceID))
}

// WithCorrelationID tags the context logger with correlation_id.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return With(ctx, slog.String("correlation_id", correlationID))
}

// WithUser tags the context logger with the authenticated account.
func WithUser(ctx context.Context, userID int64, username string) context.Context {
	return With(ctx, slog.String("user_id", strconv.FormatInt(userID, 10)), slog.String("username", username))
}

// SetDefault replaces the fallback logger and the slog default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
