package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/xxxsen/notelink/internal/pkg/token"
)

const (
	ContextRequestIDKey = "request_id"

	requestIDHeader = "X-Request-Id"
)

// RequestID tags every request with an identifier so share operations
// can be correlated in logs. An inbound X-Request-Id is echoed back,
// otherwise a short random id is minted.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = token.New(9)
		}
		c.Writer.Header().Set(requestIDHeader, reqID)
		c.Set(ContextRequestIDKey, reqID)
		c.Next()
	}
}
