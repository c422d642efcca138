package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the client's session identity. Each browsing session
// owns its own calendar state; the server mints an ID when the client has
// none and echoes it back so the client can keep it.
const SessionHeader = "X-Session-ID"

const sessionIDKey = "sessionID"

// SessionMiddleware resolves or mints the client session ID.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Set(sessionIDKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// GetSessionID returns the request's session ID as resolved by SessionMiddleware.
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
