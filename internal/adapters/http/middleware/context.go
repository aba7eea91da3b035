// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"context"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	ctxKeyRequestID     contextKey = "request_id"
	ctxKeyCorrelationID contextKey = "correlation_id"
	ctxKeyIdentity      contextKey = "identity"
)

// RequestIDFromContext extracts the request ID from context.Context.
// Returns empty string if not set or if ctx is nil.
// Client adapters use it to propagate the request ID to the quote provider.
func RequestIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, ctxKeyRequestID)
}

// CorrelationIDFromContext extracts the correlation ID from context.Context.
// Returns empty string if not set or if ctx is nil.
func CorrelationIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, ctxKeyCorrelationID)
}

// ContextWithRequestID stores a request ID in the context.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// ContextWithCorrelationID stores a correlation ID in the context.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

// ContextWithIdentity stores the authenticated identity in the context.
func ContextWithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext returns the identity stored by RequireAuth.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	if ctx == nil {
		return domain.Identity{}, false
	}

	id, ok := ctx.Value(ctxKeyIdentity).(domain.Identity)

	return id, ok
}

func stringFromContext(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}

	if id, ok := ctx.Value(key).(string); ok {
		return id
	}

	return ""
}
