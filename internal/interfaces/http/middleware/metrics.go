package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/infrastructure/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per matched route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
