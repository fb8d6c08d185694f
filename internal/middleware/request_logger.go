package middleware

import (
	"log/slog"

	"gifttax/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger stores a logger tagged with the request id in the request
// context. An incoming X-Request-ID is reused, otherwise one is generated.
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		l := base.With("request_id", requestID)
		c.Request = c.Request.WithContext(logger.ToContext(c.Request.Context(), l))
		c.Next()
	}
}
