package middleware

import (
	"time"

	"homeservice-booking/internal/observability/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records every request under its route template.
func MetricsMiddleware(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
