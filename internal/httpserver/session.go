package httpserver

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionHeader identifies the browsing session that owns the cart and
// lastOrder slots. A missing header starts a fresh session; the id is echoed
// back so the client can carry it forward.
const sessionHeader = "X-Session-ID"

const sessionContextKey = "nowbuy.session"

func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := strings.TrimSpace(c.GetHeader(sessionHeader))
		if sid == "" {
			sid = uuid.NewString()
		}
		c.Set(sessionContextKey, sid)
		c.Header(sessionHeader, sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
