package ticket

import (
	"net/http"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/session"
	"ticketdesk/internal/application/ticket/form"
	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/interfaces/http/views"
	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/utils"
)

// NewTicket handles GET /tickets/new
func (h *TicketHandler) NewTicket(c *gin.Context) {
	ctrl := form.NewCreateController(h.saver, h.logger)
	h.renderForm(c, http.StatusOK, ctrl)
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	h.handleFormPost(c, "")
}

// EditTicket handles GET /tickets/:id/edit
func (h *TicketHandler) EditTicket(c *gin.Context) {
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

	ctrl := form.NewEditController(result.Entity, h.saver, h.logger)
	h.renderForm(c, http.StatusOK, ctrl)
}

// UpdateTicket handles POST /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseTicketIDParam(c, "id")
	if err != nil {
		h.views.Error(c, http.StatusBadRequest, errors.UserMessage(err, constants.ErrMsgNotFound))
		return
	}
	h.handleFormPost(c, ticketID)
}

// handleFormPost runs one form interaction: a tag edit re-renders the form,
// a submit saves and redirects to the detail page or re-renders with errors.
func (h *TicketHandler) handleFormPost(c *gin.Context, ticketID string) {
	var req TicketFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid ticket form body", "error", err)
		h.views.Error(c, http.StatusBadRequest, "Invalid form submission")
		return
	}

	ctrl := form.Restore(ticketID, req.ToDraft(ticketID == ""), "", h.saver, h.logger)
	applyTagInput(ctrl, req.TagInput)

	switch {
	case req.RemoveTag != "":
		ctrl.RemoveTag(req.RemoveTag)
		h.renderForm(c, http.StatusOK, ctrl)
		return
	case req.Action == actionAddTag:
		ctrl.KeyTagInput(form.KeyEnter)
		h.renderForm(c, http.StatusOK, ctrl)
		return
	}

	// Leaving the tag input to press submit commits whatever is pending.
	ctrl.BlurTagInput()

	sess := session.FromContext(c.Request.Context())
	if err := ctrl.Submit(c.Request.Context(), sess); err != nil {
		h.renderForm(c, errors.StatusCode(err), ctrl)
		return
	}

	c.Redirect(http.StatusSeeOther, ctrl.RedirectURL())
}

func (h *TicketHandler) renderForm(c *gin.Context, code int, ctrl *form.Controller) {
	sess := session.FromContext(c.Request.Context())
	fc := h.formContextUC.Execute(c.Request.Context(), sess)

	title := "New ticket"
	actionURL := "/tickets"
	if ctrl.Mode() == form.ModeEdit {
		title = "Edit " + ctrl.TicketID()
		actionURL = "/tickets/" + ctrl.TicketID()
	}

	data := pongo2.Context{
		"title":            title,
		"mode":             string(ctrl.Mode()),
		"ticket_id":        ctrl.TicketID(),
		"action_url":       actionURL,
		"cancel_url":       ctrl.CancelURL(),
		"draft":            toFormView(ctrl),
		"errors":           ctrl.Errors(),
		"form_error":       ctrl.FormError(),
		"users":            fc.Users,
		"current_user":     fc.CurrentUser,
		"status_options":   views.StatusOptions(false),
		"priority_options": views.PriorityOptions(),
	}
	if fc.UsersErr != nil {
		data["users_error"] = errors.UserMessage(fc.UsersErr, "Failed to load users")
	}
	if fc.CurrentUserErr != nil {
		data["current_user_error"] = errors.UserMessage(fc.CurrentUserErr, constants.ErrMsgNoUser)
	}

	h.views.HTML(c, code, "form.html", data)
}
