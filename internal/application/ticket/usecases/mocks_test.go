package usecases

import (
	"context"
	"time"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/domain/user"
)

type mockSource struct {
	ListFunc   func(ctx context.Context) (*ticket.Page, error)
	GetFunc    func(ctx context.Context, id string) (*ticket.Ticket, error)
	CreateFunc func(ctx context.Context, in ticket.CreateInput) (*ticket.Ticket, error)
	UpdateFunc func(ctx context.Context, id string, patch ticket.Patch) (*ticket.Ticket, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *mockSource) List(ctx context.Context) (*ticket.Page, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return &ticket.Page{}, nil
}

func (m *mockSource) Get(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSource) Create(ctx context.Context, in ticket.CreateInput) (*ticket.Ticket, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockSource) Update(ctx context.Context, id string, patch ticket.Patch) (*ticket.Ticket, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockSource) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockDirectory struct {
	ListUsersFunc func(ctx context.Context) ([]*user.User, error)
	GetUserFunc   func(ctx context.Context, id string) (*user.User, error)
}

func (m *mockDirectory) ListUsers(ctx context.Context) ([]*user.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockDirectory) GetUser(ctx context.Context, id string) (*user.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

type mockMarkdown struct {
	RenderFunc func(src string) (string, error)
}

func (m *mockMarkdown) Render(src string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(src)
	}
	return "<p>" + src + "</p>", nil
}

func (m *mockMarkdown) Excerpt(src string, _ int) string {
	return src
}

var now = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func mustTicket(id string, status vo.TicketStatus, updatedAgo time.Duration) *ticket.Ticket {
	t, err := ticket.ReconstructTicket(id, "Title "+id, "Desc "+id, status, vo.PriorityMedium, "", "user-001", nil,
		now.Add(-30*24*time.Hour), now.Add(-updatedAgo))
	if err != nil {
		panic(err)
	}
	return t
}

func mustUser(id, name string) *user.User {
	u, err := user.ReconstructUser(id, name, id+"@example.com", "", now, now)
	if err != nil {
		panic(err)
	}
	return u
}
