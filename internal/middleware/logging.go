package middleware

import (
	"time"

	"github.com/Santykk/MERCADEO/internal/logger"
	"github.com/Santykk/MERCADEO/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID attaches a request id to the context so every log line from the
// request can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := logger.WithRequestID(c.Request.Context(), reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-ID", reqID)

		c.Next()
	}
}

// Logging logs every HTTP request in structured form.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		userID, _ := utils.GetUserIDFromContext(c.Request.Context())

		logger.FromCtx(c.Request.Context()).Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("remote_ip", c.ClientIP()),
			zap.String("user_id", userID.String()),
		)
	}
}
