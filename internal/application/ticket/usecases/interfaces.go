package usecases

import (
	"context"

	"ticketdesk/internal/application/session"
	"ticketdesk/internal/application/ticket/dto"
)

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context) (*DashboardResult, error)
}

type LoadFormContextExecutor interface {
	Execute(ctx context.Context, sess session.Session) *FormContext
}

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]*dto.UserDTO, error)
}
