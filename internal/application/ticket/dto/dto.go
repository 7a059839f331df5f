package dto

import (
	"time"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/mapper"
)

type UserDTO struct {
	ID        string
	Name      string
	Email     string
	AvatarURL string
	Initials  string
}

type TicketDTO struct {
	ID            string
	Title         string
	Description   string
	Status        string
	StatusLabel   string
	Priority      string
	PriorityLabel string
	AssignedTo    string
	AssigneeName  string
	Assignee      *UserDTO
	CreatedBy     string
	Creator       *UserDTO
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		AvatarURL: u.AvatarURL(),
		Initials:  u.Initials(),
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	return mapper.MapSlicePtr(users, ToUserDTO)
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:            t.ID(),
		Title:         t.Title(),
		Description:   t.Description(),
		Status:        t.Status().String(),
		StatusLabel:   t.Status().Label(),
		Priority:      t.Priority().String(),
		PriorityLabel: t.Priority().Label(),
		AssignedTo:    t.AssignedTo(),
		AssigneeName:  t.AssigneeName(),
		Assignee:      ToUserDTO(t.Assignee()),
		CreatedBy:     t.CreatedBy(),
		Creator:       ToUserDTO(t.Creator()),
		Tags:          t.Tags(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	return mapper.MapSlicePtr(tickets, ToTicketDTO)
}
