package gateway

import (
	"context"
	"net/http"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/errors"
)

// TicketGateway implements ticket.Source over the REST API. It holds no
// ticket state; the server is the source of truth on every call.
type TicketGateway struct {
	client *Client
}

func NewTicketGateway(client *Client) *TicketGateway {
	return &TicketGateway{client: client}
}

// List returns the server's tickets and its metadata unchanged.
func (g *TicketGateway) List(ctx context.Context) (*ticket.Page, error) {
	var env listEnvelope[ticketWire]
	if err := g.client.do(ctx, request{
		op:     "list_tickets",
		method: http.MethodGet,
		path:   constants.APIPathTickets,
		result: &env,
	}); err != nil {
		return nil, err
	}

	page := &ticket.Page{
		Tickets: make([]*ticket.Ticket, 0, len(env.Data)),
		Meta:    env.Meta,
	}
	for i := range env.Data {
		t, err := env.Data[i].toDomain()
		if err != nil {
			return nil, errors.NewTransportError("invalid ticket in API response", err.Error()).WithCause(err)
		}
		page.Tickets = append(page.Tickets, t)
	}
	return page, nil
}

func (g *TicketGateway) Get(ctx context.Context, id string) (*ticket.Ticket, error) {
	var w ticketWire
	if err := g.client.do(ctx, request{
		op:         "get_ticket",
		method:     http.MethodGet,
		path:       constants.APIPathTicket,
		pathParams: map[string]string{"id": id},
		result:     &w,
	}); err != nil {
		return nil, err
	}
	return decodeTicket(&w)
}

func (g *TicketGateway) Create(ctx context.Context, in ticket.CreateInput) (*ticket.Ticket, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var w ticketWire
	if err := g.client.do(ctx, request{
		op:     "create_ticket",
		method: http.MethodPost,
		path:   constants.APIPathTickets,
		body:   newCreateTicketBody(in),
		result: &w,
	}); err != nil {
		return nil, err
	}
	return decodeTicket(&w)
}

func (g *TicketGateway) Update(ctx context.Context, id string, patch ticket.Patch) (*ticket.Ticket, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var w ticketWire
	if err := g.client.do(ctx, request{
		op:         "update_ticket",
		method:     http.MethodPatch,
		path:       constants.APIPathTicket,
		pathParams: map[string]string{"id": id},
		body:       newPatchTicketBody(patch),
		result:     &w,
	}); err != nil {
		return nil, err
	}
	return decodeTicket(&w)
}

func (g *TicketGateway) Delete(ctx context.Context, id string) error {
	return g.client.do(ctx, request{
		op:         "delete_ticket",
		method:     http.MethodDelete,
		path:       constants.APIPathTicket,
		pathParams: map[string]string{"id": id},
	})
}

func decodeTicket(w *ticketWire) (*ticket.Ticket, error) {
	t, err := w.toDomain()
	if err != nil {
		return nil, errors.NewTransportError("invalid ticket in API response", err.Error()).WithCause(err)
	}
	return t, nil
}
