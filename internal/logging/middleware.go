package logging

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"

	loggerContextKey    = "__request_logger"
	requestIDContextKey = "__request_id"
)

// RequestLogger tags each request with an id and logs one line once it completes.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	if base == nil {
		base = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()

		requestID := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		c.Set(requestIDContextKey, requestID)

		logger := base.With(zap.String("request_id", requestID))
		c.Set(loggerContextKey, logger)

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			zap.String("remote_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// Recovery converts panics into a 500 response and logs them.
func Recovery(base *zap.Logger) gin.HandlerFunc {
	if base == nil {
		base = zap.NewNop()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		FromContext(c, base).Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}

// FromContext returns the request-scoped logger, or fallback outside a request.
func FromContext(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if c != nil {
		if cached, ok := c.Get(loggerContextKey); ok {
			if logger, ok := cached.(*zap.Logger); ok {
				return logger
			}
		}
	}
	if fallback == nil {
		return zap.NewNop()
	}
	return fallback
}

// RequestID returns the id assigned by RequestLogger.
func RequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(requestIDContextKey)
}
