package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"green-justice/models"
	"green-justice/session"
)

const authorityContextKey = "authority"

// AuthMiddleware rejects requests that do not carry a bearer token known to
// the session registry. A missing header, a malformed header and an unknown
// token all fail the same way.
func AuthMiddleware(sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Not authenticated"})
			return
		}

		authority, ok := sessions.Resolve(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Not authenticated"})
			return
		}

		c.Set(authorityContextKey, authority)
		c.Next()
	}
}

// AuthorityFromContext returns the identity set by AuthMiddleware.
func AuthorityFromContext(c *gin.Context) (models.Authority, bool) {
	value, exists := c.Get(authorityContextKey)
	if !exists {
		return models.Authority{}, false
	}
	authority, ok := value.(models.Authority)
	return authority, ok
}

// extractToken extracts the token from a Bearer authorization header.
func extractToken(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// CORSMiddleware handles CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SecurityHeaders adds security headers to responses
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("X-XSS-Protection", "1; mode=block")
		c.Next()
	}
}
