package form

import (
	"context"

	"ticketdesk/internal/domain/ticket"
)

type mockSaver struct {
	CreateFunc func(ctx context.Context, in ticket.CreateInput) (*ticket.Ticket, error)
	UpdateFunc func(ctx context.Context, id string, patch ticket.Patch) (*ticket.Ticket, error)

	createCalls int
	updateCalls int
}

func (m *mockSaver) Create(ctx context.Context, in ticket.CreateInput) (*ticket.Ticket, error) {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockSaver) Update(ctx context.Context, id string, patch ticket.Patch) (*ticket.Ticket, error) {
	m.updateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, nil
}
