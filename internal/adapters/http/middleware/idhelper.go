package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// idMiddlewareConfig configures the ID middleware behavior.
type idMiddlewareConfig struct {
	headerName string
	contextKey string

	// enrichers run in order on the request context.
	enrichers []func(ctx context.Context, id string) context.Context
}

// createIDMiddleware creates middleware that extracts or generates an ID.
// Shared by the request ID and correlation ID middleware.
func createIDMiddleware(cfg idMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.headerName)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(cfg.contextKey, id)
		c.Header(cfg.headerName, id)

		if len(cfg.enrichers) > 0 {
			ctx := c.Request.Context()
			for _, enrich := range cfg.enrichers {
				ctx = enrich(ctx, id)
			}

			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

// getIDFromContext extracts an ID from the gin context by key.
func getIDFromContext(c *gin.Context, key string) string {
	if id, exists := c.Get(key); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}
