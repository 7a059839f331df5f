package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ticketdesk/internal/interfaces/http/handlers"
)

type SystemRouteConfig struct {
	HealthHandler  *handlers.HealthHandler
	MetricsEnabled bool
	MetricsPath    string
}

// SetupSystemRoutes registers liveness, metrics and the fallback that sends
// unknown paths to the dashboard.
func SetupSystemRoutes(engine *gin.Engine, config *SystemRouteConfig) {
	engine.GET("/healthz", config.HealthHandler.HealthCheck)

	if config.MetricsEnabled {
		path := config.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	engine.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
}
