package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/application/ticket/listview"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/logger"
)

type DashboardResult struct {
	TotalCount      int
	OpenCount       int
	InProgressCount int
	ResolvedCount   int
	Recent          []*dto.TicketDTO
}

type GetDashboardUseCase struct {
	source ticket.Source
	limit  int
	logger logger.Interface
}

func NewGetDashboardUseCase(source ticket.Source, recentLimit int, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		source: source,
		limit:  recentLimit,
		logger: logger,
	}
}

// Execute reads the counters from list metadata as supplied by the source.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*DashboardResult, error) {
	uc.logger.Debugw("fetching dashboard")

	page, err := uc.source.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load dashboard", "error", err)
		return nil, err
	}

	recent := listview.Project(page.Tickets, listview.Query{
		Field:     listview.SortByUpdatedAt,
		Direction: listview.Descending,
		Status:    vo.StatusAll,
	})
	if uc.limit > 0 && len(recent) > uc.limit {
		recent = recent[:uc.limit]
	}

	return &DashboardResult{
		TotalCount:      page.Meta.TotalCount,
		OpenCount:       page.Meta.OpenCount,
		InProgressCount: page.Meta.InProgressCount,
		ResolvedCount:   page.Meta.ResolvedCount,
		Recent:          dto.ToTicketDTOs(recent),
	}, nil
}
