package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ander1code/cleanblog/internal/shared/response"
)

// Recovery turns a handler panic into a logged 500 with the standard error
// envelope instead of tearing down the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(ContextKeyRequestID)).
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.Abort()
				response.InternalServerError(c, "Internal server error")
			}
		}()

		c.Next()
	}
}
