package ticket

import (
	"strings"
	"time"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/errors"
)

// Ticket is a unit of trackable work. id, createdBy and createdAt are fixed
// at creation; every mutation moves updatedAt forward.
type Ticket struct {
	id          string
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	assignedTo  string
	assignee    *user.User
	createdBy   string
	creator     *user.User
	tags        vo.TagSet
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket builds a ticket from validated input, stamping both timestamps with now.
func NewTicket(id string, in CreateInput, now time.Time) (*Ticket, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &Ticket{
		id:          id,
		title:       in.Title,
		description: in.Description,
		status:      in.Status,
		priority:    in.Priority,
		assignedTo:  in.AssignedTo,
		createdBy:   in.CreatedBy,
		tags:        vo.NewTagSet(in.Tags...),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id string,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	assignedTo string,
	createdBy string,
	tags []string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid status", string(status))
	}
	if !priority.IsValid() {
		return nil, errors.NewValidationError("invalid priority", string(priority))
	}
	if updatedAt.Before(createdAt) {
		updatedAt = createdAt
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		assignedTo:  assignedTo,
		createdBy:   createdBy,
		tags:        vo.NewTagSet(tags...),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

// AssignedTo is the assignee's user id, empty when unassigned.
func (t *Ticket) AssignedTo() string {
	return t.assignedTo
}

func (t *Ticket) IsAssigned() bool {
	return t.assignedTo != ""
}

// Assignee is the embedded snapshot, nil when absent.
func (t *Ticket) Assignee() *user.User {
	return t.assignee
}

// AssigneeName is the sort and display key for the assignee: the snapshot's
// name, else the raw id, else empty.
func (t *Ticket) AssigneeName() string {
	if t.assignee != nil {
		return t.assignee.Name()
	}
	return t.assignedTo
}

func (t *Ticket) CreatedBy() string {
	return t.createdBy
}

func (t *Ticket) Creator() *user.User {
	return t.creator
}

func (t *Ticket) Tags() []string {
	return t.tags.Values()
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// AttachUsers sets the denormalized user snapshots. A snapshot whose id does
// not match the reference is ignored.
func (t *Ticket) AttachUsers(assignee, creator *user.User) {
	t.assignee = nil
	if assignee != nil && assignee.ID() == t.assignedTo {
		t.assignee = assignee.Clone()
	}
	t.creator = nil
	if creator != nil && creator.ID() == t.createdBy {
		t.creator = creator.Clone()
	}
}

// Apply merges patch over the ticket and refreshes updatedAt. updatedAt always
// moves strictly forward even when now does not.
func (t *Ticket) Apply(p Patch, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.Title != nil {
		t.title = *p.Title
	}
	if p.Description != nil {
		t.description = *p.Description
	}
	if p.Status != nil {
		t.status = *p.Status
	}
	if p.Priority != nil {
		t.priority = *p.Priority
	}
	if p.AssignedTo != nil && *p.AssignedTo != t.assignedTo {
		t.assignedTo = *p.AssignedTo
		t.assignee = nil
	}
	if p.Tags != nil {
		t.tags = vo.NewTagSet(p.Tags...)
	}

	t.touch(now)
	return nil
}

func (t *Ticket) touch(now time.Time) {
	if !now.After(t.updatedAt) {
		now = t.updatedAt.Add(time.Nanosecond)
	}
	t.updatedAt = now
}

// Clone returns a deep copy so callers never share mutable state with a store.
func (t *Ticket) Clone() *Ticket {
	c := *t
	c.tags = vo.NewTagSet(t.tags.Values()...)
	c.assignee = t.assignee.Clone()
	c.creator = t.creator.Clone()
	return &c
}
