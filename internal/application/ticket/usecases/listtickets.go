package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/application/ticket/listview"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Sort   string
	Dir    string
	Status string
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Query   listview.Query
	Meta    ticket.PageMeta
	// Total is the number of tickets before filtering.
	Total int
}

type ListTicketsUseCase struct {
	source ticket.Source
	logger logger.Interface
}

func NewListTicketsUseCase(source ticket.Source, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		source: source,
		logger: logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	q := listview.ParseQuery(query.Sort, query.Dir, query.Status)
	uc.logger.Debugw("executing list tickets use case", "sort", q.Field, "dir", q.Direction, "status", q.Status)

	page, err := uc.source.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketDTOs(listview.Project(page.Tickets, q)),
		Query:   q,
		Meta:    page.Meta,
		Total:   len(page.Tickets),
	}, nil
}
