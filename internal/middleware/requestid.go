package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// WithRequestID assigns every request an ID, honoring one supplied by the
// caller, and echoes it back in the response headers.
func WithRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the request's assigned ID, or "" outside WithRequestID.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
