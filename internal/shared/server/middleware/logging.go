package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/telemetry"
)

// LogFieldsKey is the gin context key handlers use to attach extra fields
// (map[string]any) to the request.complete log line.
const LogFieldsKey = "logFields"

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"bytes":       c.Writer.Size(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if raw, ok := c.Get(LogFieldsKey); ok {
			if extra, ok := raw.(map[string]any); ok {
				for k, v := range extra {
					fields[k] = v
				}
			}
		}

		telemetry.Info("request.complete", fields)
	}
}

// AddLogField attaches a field to the request.complete log line.
func AddLogField(c *gin.Context, key string, value any) {
	extra, _ := c.Get(LogFieldsKey)
	fields, ok := extra.(map[string]any)
	if !ok {
		fields = make(map[string]any)
		c.Set(LogFieldsKey, fields)
	}
	fields[key] = value
}
