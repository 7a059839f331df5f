package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	engine.GET("/", config.TicketHandler.Dashboard)

	tickets := engine.Group("/tickets")
	{
		// Specific paths are registered before the parameterized ones.
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("/new", config.TicketHandler.NewTicket)

		tickets.GET("/:id/edit", config.TicketHandler.EditTicket)
		tickets.POST("/:id/delete", config.TicketHandler.DeleteTicket)

		tickets.GET("/:id", config.TicketHandler.ShowTicket)
		tickets.POST("/:id", config.TicketHandler.UpdateTicket)
	}
}
