// Package middleware – bearer-token authentication.
//
// Routes that mutate collaborations need the caller's credential id. Token
// issuance lives in a separate auth service; this middleware only validates
// the HS256 access token and exposes the credential id to handlers.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openmusicapp/go-music-backend/internal/auth"
)

// credentialKey is the Gin context key holding the authenticated caller id.
const credentialKey = "credentialId"

// RequireAuth validates the Authorization bearer token and stores the
// credential id in the Gin context. Requests without a valid token are
// rejected with a 401 fail envelope before any handler runs.
func RequireAuth(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "Missing authentication",
			})
			return
		}
		claims, err := v.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "Invalid token",
			})
			return
		}
		c.Set(credentialKey, claims.UserID)
		c.Next()
	}
}

// CredentialID returns the authenticated caller id resolved by RequireAuth,
// or "" when the request is unauthenticated.
func CredentialID(c *gin.Context) string {
	if v, ok := c.Get(credentialKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
