package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is the context key under which handlers find the
// request ID (see handler.HandleError).
const requestIDKey = "request_id"

// RequestLog tags every request with an X-Request-ID, generating one
// when the client sent none, and writes a single access-log line after
// the handler chain completes. The same ID prefixes the line so a log
// grep for one request yields its access entry and any error entries
// together.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.Printf("[%s] %s %s %d %s",
			requestID,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
