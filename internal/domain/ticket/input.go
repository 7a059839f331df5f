package ticket

import (
	"strings"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
)

// CreateInput carries everything needed to create a ticket.
type CreateInput struct {
	Title       string
	Description string
	Status      vo.TicketStatus
	Priority    vo.Priority
	Tags        []string
	AssignedTo  string
	CreatedBy   string
}

func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errors.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return errors.NewValidationError("Description is required")
	}
	if !in.Status.IsValid() {
		return errors.NewValidationError("invalid status", string(in.Status))
	}
	if !in.Priority.IsValid() {
		return errors.NewValidationError("invalid priority", string(in.Priority))
	}
	if strings.TrimSpace(in.CreatedBy) == "" {
		return errors.NewValidationError("creator is required")
	}
	return nil
}

// Patch is a partial update. Nil fields are left untouched. AssignedTo set to
// an empty string clears the assignee. id, createdAt and createdBy have no
// field here and so can never be replaced.
type Patch struct {
	Title       *string
	Description *string
	Status      *vo.TicketStatus
	Priority    *vo.Priority
	Tags        []string
	AssignedTo  *string
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.Tags == nil && p.AssignedTo == nil
}

func (p Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return errors.NewValidationError("Title is required")
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return errors.NewValidationError("Description is required")
	}
	if p.Status != nil && !p.Status.IsValid() {
		return errors.NewValidationError("invalid status", string(*p.Status))
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return errors.NewValidationError("invalid priority", string(*p.Priority))
	}
	return nil
}
