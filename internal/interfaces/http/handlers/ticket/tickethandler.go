package ticket

import (
	"net/http"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/ticket/form"
	"ticketdesk/internal/application/ticket/listview"
	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/infrastructure/cache"
	"ticketdesk/internal/interfaces/http/views"
	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

// Renderer writes HTML pages.
type Renderer interface {
	HTML(c *gin.Context, code int, name string, data pongo2.Context)
	Error(c *gin.Context, code int, message string)
}

// Flasher queues a message for the page after a redirect.
type Flasher interface {
	Add(c *gin.Context, kind, text string)
}

type TicketHandler struct {
	dashboardUC    usecases.GetDashboardExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	getTicketUC    usecases.GetTicketExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	formContextUC  usecases.LoadFormContextExecutor
	saver          form.Saver
	views          Renderer
	flash          Flasher
	logger         logger.Interface
}

func NewTicketHandler(
	dashboardUC usecases.GetDashboardExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	formContextUC usecases.LoadFormContextExecutor,
	saver form.Saver,
	views Renderer,
	flash Flasher,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		dashboardUC:    dashboardUC,
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		deleteTicketUC: deleteTicketUC,
		formContextUC:  formContextUC,
		saver:          saver,
		views:          views,
		flash:          flash,
		logger:         logger,
	}
}

// Dashboard handles GET /
func (h *TicketHandler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context())
	if err != nil {
		h.views.HTML(c, errors.StatusCode(err), "dashboard.html", pongo2.Context{
			"title": "Dashboard",
			"error": errors.UserMessage(err, constants.ErrMsgLoadTickets),
		})
		return
	}

	h.views.HTML(c, http.StatusOK, "dashboard.html", pongo2.Context{
		"title": "Dashboard",
		"stats": result,
	})
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	var req ListTicketsRequest
	_ = c.ShouldBindQuery(&req)

	data := pongo2.Context{
		"title":          "Tickets",
		"status_options": views.StatusOptions(true),
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		q := listview.ParseQuery(req.Sort, req.Dir, req.Status)
		data["query"] = q
		data["headers"] = views.SortHeaders(q)
		data["error"] = errors.UserMessage(err, constants.ErrMsgLoadTickets)
		h.views.HTML(c, errors.StatusCode(err), "list.html", data)
		return
	}

	data["query"] = result.Query
	data["headers"] = views.SortHeaders(result.Query)
	data["tickets"] = result.Tickets
	data["shown"] = len(result.Tickets)
	data["total"] = result.Total
	data["meta"] = result.Meta
	h.views.HTML(c, http.StatusOK, "list.html", data)
}

// ShowTicket handles GET /tickets/:id
func (h *TicketHandler) ShowTicket(c *gin.Context) {
	h.renderDetail(c, http.StatusOK, "")
}

// DeleteTicket handles POST /tickets/:id/delete. Success redirects to the
// list with a flash; failure re-renders the detail page with the error inline.
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseTicketIDParam(c, "id")
	if err != nil {
		h.views.Error(c, http.StatusBadRequest, errors.UserMessage(err, constants.ErrMsgNotFound))
		return
	}

	err = h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID})
	if err != nil {
		h.renderDetail(c, errors.StatusCode(err), errors.UserMessage(err, constants.ErrMsgDeleteTicket))
		return
	}

	h.flash.Add(c, cache.FlashSuccess, constants.FlashTicketDeleted)
	c.Redirect(http.StatusSeeOther, "/tickets")
}

func (h *TicketHandler) renderDetail(c *gin.Context, code int, deleteError string) {
	ticketID, err := utils.ParseTicketIDParam(c, "id")
	if err != nil {
		h.views.Error(c, http.StatusBadRequest, errors.UserMessage(err, constants.ErrMsgNotFound))
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		h.renderLoadError(c, err)
		return
	}

	h.views.HTML(c, code, "detail.html", pongo2.Context{
		"title":            result.Ticket.Title,
		"ticket":           result.Ticket,
		"description_html": result.DescriptionHTML,
		"delete_error":     deleteError,
	})
}

func (h *TicketHandler) renderLoadError(c *gin.Context, err error) {
	if errors.IsNotFoundError(err) {
		h.views.Error(c, http.StatusNotFound, errors.UserMessage(err, constants.ErrMsgNotFound))
		return
	}
	h.views.Error(c, errors.StatusCode(err), errors.UserMessage(err, constants.ErrMsgLoadTicket))
}
