package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/session"
	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/infrastructure/backend"
	"ticketdesk/internal/infrastructure/cache"
	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/interfaces/http/handlers"
	tickethandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/interfaces/http/views"
	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/services/markdown"
)

// Container holds the infrastructure, use cases and handlers of the web
// front end and wires them together. Shutdown releases what it opened.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	// Infrastructure
	backend    *backend.Backend
	flashStore cache.FlashStore
	closeFlash func()
	renderer   *views.Renderer
	markdown   markdown.Renderer
	sessions   *session.Resolver
	flash      *middleware.Flash

	// Use cases
	dashboardUC   *usecases.GetDashboardUseCase
	listTicketsUC *usecases.ListTicketsUseCase
	getTicketUC   *usecases.GetTicketUseCase
	deleteUC      *usecases.DeleteTicketUseCase
	formContextUC *usecases.LoadFormContextUseCase

	// Handlers
	ticketHandler *tickethandlers.TicketHandler
	healthHandler *handlers.HealthHandler
}

// NewContainer builds every component for cfg. The ticket source is chosen
// by backend.mode; the flash store by flash.backend.
func NewContainer(ctx context.Context, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	b, err := backend.New(c.cfg, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	c.backend = b

	store, closeFlash, err := backend.NewFlashStore(ctx, c.cfg, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize flash store: %w", err)
	}
	c.flashStore = store
	c.closeFlash = closeFlash

	renderer, err := views.NewRenderer(c.log.Named("views"))
	if err != nil {
		c.closeFlash()
		return fmt.Errorf("failed to initialize templates: %w", err)
	}
	c.renderer = renderer

	c.markdown = markdown.NewRenderer()
	c.sessions = session.NewResolver(c.cfg.Session.CurrentUserID, c.cfg.Session.Header)
	c.flash = middleware.NewFlash(c.flashStore, c.cfg.Flash.CookieName, c.cfg.Flash.TTL(), c.log.Named("flash"))

	c.log.Infow("backend ready", "mode", c.backend.Mode, "flash_backend", c.cfg.Flash.Backend)
	return nil
}

func (c *Container) initUseCases() {
	src := c.backend.Tickets

	c.dashboardUC = usecases.NewGetDashboardUseCase(src, constants.RecentTicketsLimit, c.log)
	c.listTicketsUC = usecases.NewListTicketsUseCase(src, c.log)
	c.getTicketUC = usecases.NewGetTicketUseCase(src, c.markdown, c.log)
	c.deleteUC = usecases.NewDeleteTicketUseCase(src, c.log)
	c.formContextUC = usecases.NewLoadFormContextUseCase(c.backend.Users, c.log)
}

func (c *Container) initHandlers() {
	c.ticketHandler = tickethandlers.NewTicketHandler(
		c.dashboardUC,
		c.listTicketsUC,
		c.getTicketUC,
		c.deleteUC,
		c.formContextUC,
		c.backend.Tickets,
		c.renderer,
		c.flash,
		c.log.Named("tickets"),
	)
	c.healthHandler = handlers.NewHealthHandler(c.backend.Mode)
}

// Shutdown releases the flash store connection.
func (c *Container) Shutdown() {
	if c.closeFlash != nil {
		c.closeFlash()
		c.closeFlash = nil
	}
	c.log.Infow("container shut down")
}
