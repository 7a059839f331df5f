package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/interfaces/http/routes"
	"ticketdesk/internal/shared/logger"
)

// Router owns the gin engine and the container behind it.
type Router struct {
	container *Container
	engine    *gin.Engine
}

func NewRouter(ctx context.Context, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{container: c, engine: c.engine}, nil
}

// SetupRoutes installs the middleware chain and every route.
func (r *Router) SetupRoutes() {
	c := r.container

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(c.log.Named("http"), "/healthz", c.cfg.Metrics.Path))
	r.engine.Use(middleware.Recovery(c.log, c.renderer))
	r.engine.Use(middleware.SecurityHeaders())
	if c.cfg.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
	r.engine.Use(middleware.Session(c.sessions))
	r.engine.Use(c.flash.Middleware())

	routes.SetupSystemRoutes(r.engine, &routes.SystemRouteConfig{
		HealthHandler:  c.healthHandler,
		MetricsEnabled: c.cfg.Metrics.Enabled,
		MetricsPath:    c.cfg.Metrics.Path,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: c.ticketHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) Shutdown() {
	r.container.Shutdown()
}
