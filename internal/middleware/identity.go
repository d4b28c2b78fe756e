package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// userIDHeader carries the caller identity resolved by the auth layer in
// front of this service. The core trusts the header as given.
const userIDHeader = "X-User-ID"

// IdentityMiddleware creates a Gin middleware handler that requires a
// resolved user identity on every request and stores it in the context.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			GetLoggerFromCtx(c.Request.Context()).Warn("Missing user identity header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
			return
		}

		// Store in both the Gin context and the request context so services
		// reading a plain context.Context can find it.
		c.Set(string(userIDKey), userID)
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
