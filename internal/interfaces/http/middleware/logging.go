// Package middleware holds the cross-cutting gin middleware of the HTTP
// layer.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
)

// slowThreshold marks requests worth a warning even when they succeed.
const slowThreshold = 3 * time.Second

var skipPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
	"/metrics": true,
}

// RequestLogging logs one line per request: method, route, status, duration.
// 5xx log as errors, 4xx and slow requests as warnings.
func RequestLogging(log logging.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		if skipPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", c.FullPath()),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("duration", duration),
			logging.String("client", c.ClientIP()),
		}
		switch {
		case c.Writer.Status() >= 500:
			log.Error("request failed", fields...)
		case c.Writer.Status() >= 400 || duration > slowThreshold:
			log.Warn("request degraded", fields...)
		default:
			log.Info("request served", fields...)
		}
	}
}
