package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// Cookie settings
	SessionCookieName = "blog_session"
	SessionMaxAge     = 60 * 60 * 24 * 30 // 30 days in seconds

	// Context keys
	ContextKeySessionID = "session_id"
	ContextKeyUserID    = "user_id"
	ContextKeyClaims    = "auth_claims"
)

// SessionConfig holds cookie settings for the anonymous session.
type SessionConfig struct {
	CookieDomain   string
	CookiePath     string
	CookieSecure   bool
	CookieSameSite http.SameSite
}

// DefaultSessionConfig returns secure defaults; set CookieSecure false for
// localhost development.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		CookieDomain:   "",
		CookiePath:     "/",
		CookieSecure:   true,
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// Session guarantees every request carries a session id, authenticated or
// not, so flash messages work before login. The id comes from the
// blog_session cookie; a missing or malformed cookie gets a fresh uuid.
func Session(config SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
		} else if _, parseErr := uuid.Parse(sessionID); parseErr != nil {
			sessionID = uuid.New().String()
		}

		c.SetSameSite(config.CookieSameSite)
		c.SetCookie(
			SessionCookieName,
			sessionID,
			SessionMaxAge,
			config.CookiePath,
			config.CookieDomain,
			config.CookieSecure,
			true, // httpOnly
		)

		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}
