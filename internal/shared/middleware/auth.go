package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ander1code/cleanblog/pkg/cache"
	"github.com/ander1code/cleanblog/pkg/jwt"
)

const denylistKeyPrefix = "denylist:"

// Auth validates the bearer token, rejects logged-out sessions via the
// Redis denylist, and puts the user id and claims into the context.
func Auth(tokens *jwt.Manager, denylist cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, tokens, denylist)
		if !ok {
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid user ID in token"})
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// OptionalAuth identifies the user when a valid token is present but never
// rejects the request. The login handler uses it to detect an already
// authenticated caller.
func OptionalAuth(tokens *jwt.Manager, denylist cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			c.Next()
			return
		}

		if revoked, _ := denylist.Exists(c.Request.Context(), denylistKeyPrefix+claims.SessionID); revoked {
			c.Next()
			return
		}

		if userID, err := uuid.Parse(claims.UserID); err == nil {
			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyClaims, claims)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens *jwt.Manager, denylist cache.Cache) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(401, gin.H{"error": "missing authorization header"})
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(401, gin.H{"error": "invalid authorization header format"})
		return nil, false
	}

	claims, err := tokens.ValidateToken(parts[1])
	if err != nil {
		c.JSON(401, gin.H{"error": "invalid token"})
		return nil, false
	}

	revoked, err := denylist.Exists(c.Request.Context(), denylistKeyPrefix+claims.SessionID)
	if err == nil && revoked {
		c.JSON(401, gin.H{"error": "session has been logged out"})
		return nil, false
	}

	return claims, true
}

// DenylistKey builds the revocation key for a login session id.
func DenylistKey(sessionID string) string {
	return denylistKeyPrefix + sessionID
}
