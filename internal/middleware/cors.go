package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	corsMethods = "GET, POST, DELETE, OPTIONS"
	corsHeaders = "Content-Type, X-Request-Id"
)

// CORS admits the configured origins, or any origin when the allowlist
// is empty. Only the three share endpoints exist, so the allowed
// methods are fixed.
func CORS(allowlist []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowlist))
	for _, origin := range allowlist {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowed[trimmed] = struct{}{}
		}
	}
	allowAll := len(allowed) == 0
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAll:
			applyCORSHeaders(c, "*", false)
		case origin != "":
			if _, ok := allowed[origin]; ok {
				applyCORSHeaders(c, origin, true)
			}
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func applyCORSHeaders(c *gin.Context, origin string, varyByOrigin bool) {
	header := c.Writer.Header()
	header.Set("Access-Control-Allow-Origin", origin)
	if varyByOrigin {
		header.Set("Vary", "Origin")
	}
	header.Set("Access-Control-Allow-Methods", corsMethods)
	header.Set("Access-Control-Allow-Headers", corsHeaders)
}
