package v1

import (
	"time"

	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

// RequestID keeps a caller supplied X-Request-ID or assigns a new UUID, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set(requestIDKey, requestID)
		ctx.Header(RequestIDHeader, requestID)
		ctx.Next()
	}
}

// RequestLogger writes one access log line per request, with any errors attached to the
// context. Bodies are never logged.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		entry := log.With(
			"request_id", ctx.GetString(requestIDKey),
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"latency", time.Since(start).String(),
		)
		if len(ctx.Errors) > 0 {
			entry = entry.With("error", ctx.Errors.String())
		}
		if ctx.Writer.Status() >= 500 {
			entry.Error("request failed")
			return
		}
		entry.Info("request handled")
	}
}
