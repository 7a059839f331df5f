package ticket

import (
	"strings"

	"ticketdesk/internal/application/ticket/form"
	"ticketdesk/internal/application/ticket/usecases"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

// Form actions posted by the ticket form buttons.
const (
	actionSubmit = "submit"
	actionAddTag = "add_tag"
)

// ListTicketsRequest is the list page query string.
type ListTicketsRequest struct {
	Sort   string `form:"sort"`
	Dir    string `form:"dir"`
	Status string `form:"status"`
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Sort:   r.Sort,
		Dir:    r.Dir,
		Status: r.Status,
	}
}

// TicketFormRequest is the posted create or edit form. Tags holds the
// already committed chips; TagInput is the pending, uncommitted text.
type TicketFormRequest struct {
	Title       string   `form:"title"`
	Description string   `form:"description"`
	Status      string   `form:"status"`
	Priority    string   `form:"priority"`
	AssignedTo  string   `form:"assignedTo"`
	Tags        []string `form:"tags"`
	TagInput    string   `form:"tag_input"`
	Action      string   `form:"action"`
	RemoveTag   string   `form:"remove_tag"`
}

// ToDraft rebuilds the draft as the browser last showed it. A create form
// posted without status or priority gets the usual defaults.
func (r *TicketFormRequest) ToDraft(creating bool) form.Draft {
	d := form.Draft{
		Title:       r.Title,
		Description: r.Description,
		Status:      vo.TicketStatus(strings.TrimSpace(r.Status)),
		Priority:    vo.Priority(strings.TrimSpace(r.Priority)),
		AssignedTo:  strings.TrimSpace(r.AssignedTo),
		Tags:        vo.NewTagSet(r.Tags...),
	}
	if creating {
		defaults := form.NewDraft()
		if d.Status == "" {
			d.Status = defaults.Status
		}
		if d.Priority == "" {
			d.Priority = defaults.Priority
		}
	}
	return d
}

// applyTagInput feeds the pending tag text to the controller the way typing
// would: every comma commits what precedes it and the remainder stays buffered.
func applyTagInput(ctrl *form.Controller, raw string) {
	parts := strings.Split(raw, form.KeyComma)
	for _, p := range parts[:len(parts)-1] {
		ctrl.SetTagInput(p)
		ctrl.KeyTagInput(form.KeyComma)
	}
	ctrl.SetTagInput(parts[len(parts)-1])
}

// FormView is the draft as the template renders it.
type FormView struct {
	Title       string
	Description string
	Status      string
	Priority    string
	AssignedTo  string
	Tags        []string
	TagInput    string
}

func toFormView(ctrl *form.Controller) FormView {
	d := ctrl.Draft()
	return FormView{
		Title:       d.Title,
		Description: d.Description,
		Status:      string(d.Status),
		Priority:    string(d.Priority),
		AssignedTo:  d.AssignedTo,
		Tags:        d.Tags.Values(),
		TagInput:    ctrl.TagInput(),
	}
}
