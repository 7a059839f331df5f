package usecases

import (
	"context"
	"html/template"
	"strings"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID string
}

type GetTicketResult struct {
	Ticket *dto.TicketDTO
	// DescriptionHTML is sanitized and may be embedded unescaped.
	DescriptionHTML template.HTML
	// Entity is the loaded aggregate, used to seed the edit form.
	Entity *ticket.Ticket
}

type GetTicketUseCase struct {
	source   ticket.Source
	markdown markdown.Renderer
	logger   logger.Interface
}

func NewGetTicketUseCase(source ticket.Source, md markdown.Renderer, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		source:   source,
		markdown: md,
		logger:   logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	id := strings.TrimSpace(query.TicketID)
	if id == "" {
		return nil, errors.NewBadRequestError("ticket ID is required")
	}

	t, err := uc.source.Get(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Infow("ticket not found", "ticket_id", id)
		} else {
			uc.logger.Errorw("failed to get ticket", "ticket_id", id, "error", err)
		}
		return nil, err
	}

	rendered, err := uc.markdown.Render(t.Description())
	if err != nil {
		uc.logger.Warnw("failed to render ticket description", "ticket_id", id, "error", err)
		rendered = template.HTMLEscapeString(t.Description())
	}

	return &GetTicketResult{
		Ticket:          dto.ToTicketDTO(t),
		DescriptionHTML: template.HTML(rendered),
		Entity:          t,
	}, nil
}
