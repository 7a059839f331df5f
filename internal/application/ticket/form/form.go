// Package form drives the create and edit ticket forms.
//
// A Controller owns one Draft and moves through
// Editing -> Validating -> Submitting -> Success, falling back to Editing
// (through Failed when the save itself fails) with every entered value kept.
package form

import (
	"context"
	"strings"

	"ticketdesk/internal/application/session"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Field names, shared with the HTML form inputs.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldAssignedTo  = "assignedTo"
	FieldTags        = "tags"
)

// Tag input keys that commit the pending buffer.
const (
	KeyEnter = "Enter"
	KeyComma = ","
)

// FieldErrors maps a field name to its message.
type FieldErrors map[string]string

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Draft is the not yet submitted ticket.
type Draft struct {
	Title       string
	Description string
	Status      vo.TicketStatus
	Priority    vo.Priority
	AssignedTo  string
	Tags        vo.TagSet
}

// NewDraft returns an empty draft with the default status and priority.
func NewDraft() Draft {
	return Draft{
		Status:   vo.StatusOpen,
		Priority: vo.PriorityMedium,
	}
}

// DraftFromTicket pre-populates every editable field from t.
func DraftFromTicket(t *ticket.Ticket) Draft {
	return Draft{
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status(),
		Priority:    t.Priority(),
		AssignedTo:  t.AssignedTo(),
		Tags:        vo.NewTagSet(t.Tags()...),
	}
}

// Saver is the part of the ticket source the form writes through.
type Saver interface {
	Create(ctx context.Context, in ticket.CreateInput) (*ticket.Ticket, error)
	Update(ctx context.Context, id string, patch ticket.Patch) (*ticket.Ticket, error)
}

type Controller struct {
	mode      Mode
	ticketID  string
	draft     Draft
	tagInput  string
	errors    FieldErrors
	formError string
	state     State
	saved     *ticket.Ticket

	saver        Saver
	logger       logger.Interface
	onTransition func(from, to State)
}

type Option func(*Controller)

// WithTransitionHook observes every state change.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(c *Controller) {
		c.onTransition = fn
	}
}

// NewCreateController starts a blank create form.
func NewCreateController(saver Saver, log logger.Interface, opts ...Option) *Controller {
	return newController(ModeCreate, "", NewDraft(), saver, log, opts)
}

// NewEditController starts an edit form pre-populated from t.
func NewEditController(t *ticket.Ticket, saver Saver, log logger.Interface, opts ...Option) *Controller {
	return newController(ModeEdit, t.ID(), DraftFromTicket(t), saver, log, opts)
}

// Restore rebuilds a controller from a draft posted back by the browser.
// ticketID is empty for the create form.
func Restore(ticketID string, draft Draft, tagInput string, saver Saver, log logger.Interface, opts ...Option) *Controller {
	mode := ModeCreate
	if ticketID != "" {
		mode = ModeEdit
	}
	c := newController(mode, ticketID, draft, saver, log, opts)
	c.tagInput = tagInput
	return c
}

func newController(mode Mode, id string, draft Draft, saver Saver, log logger.Interface, opts []Option) *Controller {
	c := &Controller{
		mode:     mode,
		ticketID: id,
		draft:    draft,
		errors:   FieldErrors{},
		state:    StateEditing,
		saver:    saver,
		logger:   log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Mode() Mode            { return c.mode }
func (c *Controller) TicketID() string      { return c.ticketID }
func (c *Controller) Draft() Draft          { return c.draft }
func (c *Controller) TagInput() string      { return c.tagInput }
func (c *Controller) Errors() FieldErrors   { return c.errors }
func (c *Controller) FormError() string     { return c.formError }
func (c *Controller) State() State          { return c.state }
func (c *Controller) Saved() *ticket.Ticket { return c.saved }

// SetField updates one draft field and clears that field's error.
// Unknown status or priority values are kept as typed and caught on submit.
func (c *Controller) SetField(field, value string) {
	switch field {
	case FieldTitle:
		c.draft.Title = value
	case FieldDescription:
		c.draft.Description = value
	case FieldStatus:
		c.draft.Status = vo.TicketStatus(value)
	case FieldPriority:
		c.draft.Priority = vo.Priority(value)
	case FieldAssignedTo:
		c.draft.AssignedTo = strings.TrimSpace(value)
	default:
		return
	}
	delete(c.errors, field)
}

func (c *Controller) SetTagInput(value string) {
	c.tagInput = value
}

// KeyTagInput commits the buffer when key is Enter or a comma.
func (c *Controller) KeyTagInput(key string) bool {
	if key != KeyEnter && key != KeyComma {
		return false
	}
	return c.CommitTag()
}

// BlurTagInput commits the buffer when the input loses focus.
func (c *Controller) BlurTagInput() bool {
	return c.CommitTag()
}

// CommitTag moves the trimmed buffer into the tag list. Blank or duplicate
// tags are dropped silently. The buffer is cleared either way.
func (c *Controller) CommitTag() bool {
	added := c.draft.Tags.Add(c.tagInput)
	c.tagInput = ""
	return added
}

func (c *Controller) RemoveTag(tag string) bool {
	return c.draft.Tags.Remove(tag)
}

// CancelURL is where the cancel button leads.
func (c *Controller) CancelURL() string {
	if c.mode == ModeEdit {
		return "/tickets/" + c.ticketID
	}
	return "/"
}

// RedirectURL is the detail page of the saved ticket, empty until Success.
func (c *Controller) RedirectURL() string {
	if c.state != StateSuccess || c.saved == nil {
		return ""
	}
	return "/tickets/" + c.saved.ID()
}

// Validate fills the field error map. It never contacts the saver.
func (c *Controller) Validate() bool {
	c.errors = FieldErrors{}
	if strings.TrimSpace(c.draft.Title) == "" {
		c.errors[FieldTitle] = "Title is required"
	}
	if strings.TrimSpace(c.draft.Description) == "" {
		c.errors[FieldDescription] = "Description is required"
	}
	if !c.draft.Status.IsValid() {
		c.errors[FieldStatus] = "Status is invalid"
	}
	if !c.draft.Priority.IsValid() {
		c.errors[FieldPriority] = "Priority is invalid"
	}
	return len(c.errors) == 0
}

// Submit validates and saves the draft for sess. On any failure the draft
// is left exactly as entered and the controller is back in Editing.
func (c *Controller) Submit(ctx context.Context, sess session.Session) error {
	c.formError = ""
	c.transition(StateValidating)

	if !c.Validate() {
		c.transition(StateEditing)
		return errors.NewValidationError("form has errors")
	}

	if c.mode == ModeCreate && !sess.HasUser() {
		c.formError = constants.ErrMsgNoUser
		c.transition(StateEditing)
		return errors.NewStateError(constants.ErrMsgNoUser)
	}

	c.transition(StateSubmitting)

	saved, err := c.save(ctx, sess)
	if err != nil {
		c.logger.Warnw("ticket form submit failed", "mode", c.mode, "ticket_id", c.ticketID, "error", err)
		c.formError = errors.UserMessage(err, constants.ErrMsgSaveTicket)
		c.transition(StateFailed)
		c.transition(StateEditing)
		return err
	}

	c.saved = saved
	c.transition(StateSuccess)
	c.logger.Infow("ticket form submitted", "mode", c.mode, "ticket_id", saved.ID())
	return nil
}

func (c *Controller) save(ctx context.Context, sess session.Session) (*ticket.Ticket, error) {
	tags := c.draft.Tags.Values()

	if c.mode == ModeCreate {
		return c.saver.Create(ctx, ticket.CreateInput{
			Title:       c.draft.Title,
			Description: c.draft.Description,
			Status:      c.draft.Status,
			Priority:    c.draft.Priority,
			Tags:        tags,
			AssignedTo:  c.draft.AssignedTo,
			CreatedBy:   sess.UserID,
		})
	}

	// createdBy is never part of an update.
	title, desc, status, priority, assignee := c.draft.Title, c.draft.Description, c.draft.Status, c.draft.Priority, c.draft.AssignedTo
	return c.saver.Update(ctx, c.ticketID, ticket.Patch{
		Title:       &title,
		Description: &desc,
		Status:      &status,
		Priority:    &priority,
		Tags:        tags,
		AssignedTo:  &assignee,
	})
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	if c.onTransition != nil {
		c.onTransition(from, to)
	}
}
