package auth

import (
	"strings"

	apierrors "codeberg.org/creatorkit/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// pulls the bearer token out of the Authorization header
func bearerToken(c *gin.Context) (string, bool) {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	return token, found && token != ""
}

// AuthMiddleware rejects requests without a valid JWT and records the
// caller's identity in the gin context for downstream handlers
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			apierrors.Unauthorized(c, "bearer token required")
			c.Abort()
			return
		}

		claims, err := ValidateJWT(token)
		if err != nil {
			apierrors.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)

		c.Next()
	}
}

// OptionalAuthMiddleware records the caller's identity when a valid JWT
// is present and lets anonymous requests through untouched
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := ValidateJWT(token); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("user_email", claims.Email)
			}
		}

		c.Next()
	}
}

// GetUserID reports the authenticated caller's id when one of the auth
// middlewares recorded it
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}

	return userID.(string), true
}
