package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

const (
	// HeaderAuthorization carries the bearer token.
	HeaderAuthorization = "Authorization"

	// ContextKeyIdentity is the gin context key for the authenticated identity.
	ContextKeyIdentity = "identity"

	bearerPrefix = "Bearer "
)

// RequireAuth returns middleware that admits requests carrying a valid
// bearer token. A missing token answers 401; a token that fails
// verification answers 403.
//
// On success the identity is stored in the gin context and the request
// logger is tagged with the user.
func RequireAuth(tokens ports.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(HeaderAuthorization))
		if !ok {
			abortWith(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "authentication required")
			return
		}

		id, err := tokens.Verify(token)
		if err != nil {
			logging.FromContext(c.Request.Context()).
				DebugContext(c.Request.Context(), "rejected bearer token", "error", err)
			abortWith(c, http.StatusForbidden, dto.ErrorCodeForbidden, "invalid token")

			return
		}

		c.Set(ContextKeyIdentity, id)

		ctx := logging.WithUser(c.Request.Context(), id.UserID, id.Username)
		c.Request = c.Request.WithContext(ContextWithIdentity(ctx, id))

		c.Next()
	}
}

// IdentityFromGin returns the identity stored by RequireAuth.
func IdentityFromGin(c *gin.Context) (domain.Identity, bool) {
	v, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return domain.Identity{}, false
	}

	id, ok := v.(domain.Identity)

	return id, ok
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}

// abortWith aborts with the error envelope, tagged with the trace ID when present.
func abortWith(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c)))
}
