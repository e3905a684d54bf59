package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const ContextLogger = "logger"

// RequestLogger tags every request with an X-Request-ID (generating one when
// the client sent none) and logs method/path/status/latency through zap.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		reqLog := log.With(zap.String("request_id", requestID))
		c.Set(ContextLogger, reqLog)

		c.Next()

		reqLog.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}

// Logger pulls the request-scoped logger out of gin context, falling back to
// the global nop logger when middleware did not run (tests).
func Logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(ContextLogger); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}
