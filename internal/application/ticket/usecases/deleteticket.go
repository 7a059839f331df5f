package usecases

import (
	"context"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID string
}

type DeleteTicketUseCase struct {
	source ticket.Source
	logger logger.Interface
}

func NewDeleteTicketUseCase(source ticket.Source, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		source: source,
		logger: logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if cmd.TicketID == "" {
		return errors.NewBadRequestError("ticket ID is required")
	}

	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	if err := uc.source.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
