package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/domain/user"
)

// wireTime accepts RFC 3339 timestamps and the zone-less
// "2006-01-02T15:04:05" form, which is read as UTC.
type wireTime struct {
	time.Time
}

const localLayout = "2006-01-02T15:04:05"

func (t *wireTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, localLayout} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

func (t wireTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

type userWire struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Avatar    string   `json:"avatar,omitempty"`
	CreatedAt wireTime `json:"createdAt"`
	UpdatedAt wireTime `json:"updatedAt"`
}

func (w *userWire) toDomain() (*user.User, error) {
	return user.ReconstructUser(w.ID, w.Name, w.Email, w.Avatar, w.CreatedAt.Time, w.UpdatedAt.Time)
}

type ticketWire struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	AssignedTo  *string   `json:"assignedTo"`
	Assignee    *userWire `json:"assignee,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	Creator     *userWire `json:"creator,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   wireTime  `json:"createdAt"`
	UpdatedAt   wireTime  `json:"updatedAt"`
}

func (w *ticketWire) toDomain() (*ticket.Ticket, error) {
	assignedTo := ""
	if w.AssignedTo != nil {
		assignedTo = *w.AssignedTo
	}

	t, err := ticket.ReconstructTicket(
		w.ID,
		w.Title,
		w.Description,
		vo.TicketStatus(w.Status),
		vo.Priority(w.Priority),
		assignedTo,
		w.CreatedBy,
		w.Tags,
		w.CreatedAt.Time,
		w.UpdatedAt.Time,
	)
	if err != nil {
		return nil, fmt.Errorf("decode ticket %q: %w", w.ID, err)
	}

	t.AttachUsers(snapshot(w.Assignee), snapshot(w.Creator))
	return t, nil
}

// snapshot converts an embedded user, dropping it when malformed.
func snapshot(w *userWire) *user.User {
	if w == nil {
		return nil
	}
	u, err := w.toDomain()
	if err != nil {
		return nil
	}
	return u
}

type listEnvelope[T any] struct {
	Data []T             `json:"data"`
	Meta ticket.PageMeta `json:"meta"`
}

type createTicketBody struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
	AssignedTo  *string  `json:"assignedTo,omitempty"`
	CreatedBy   string   `json:"createdBy"`
}

func newCreateTicketBody(in ticket.CreateInput) createTicketBody {
	body := createTicketBody{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status.String(),
		Priority:    in.Priority.String(),
		Tags:        vo.NewTagSet(in.Tags...).Values(),
		CreatedBy:   in.CreatedBy,
	}
	if in.AssignedTo != "" {
		body.AssignedTo = &in.AssignedTo
	}
	return body
}

// patchTicketBody only carries the fields present in the patch. createdBy,
// createdAt and id are never sent.
type patchTicketBody struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Priority    *string   `json:"priority,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	AssignedTo  *string   `json:"assignedTo,omitempty"`
}

func newPatchTicketBody(p ticket.Patch) patchTicketBody {
	body := patchTicketBody{
		Title:       p.Title,
		Description: p.Description,
		AssignedTo:  p.AssignedTo,
	}
	if p.Status != nil {
		s := p.Status.String()
		body.Status = &s
	}
	if p.Priority != nil {
		s := p.Priority.String()
		body.Priority = &s
	}
	if p.Tags != nil {
		tags := vo.NewTagSet(p.Tags...).Values()
		body.Tags = &tags
	}
	return body
}
