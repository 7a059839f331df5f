package ticket

import (
	"context"
	"html/template"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/session"
	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

type mockDashboardUC struct {
	result *usecases.DashboardResult
	err    error
}

func (m *mockDashboardUC) Execute(_ context.Context) (*usecases.DashboardResult, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

func (m *mockListTicketsUC) Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockGetTicketUC struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetTicketQuery) (*usecases.GetTicketResult, error)
}

func (m *mockGetTicketUC) Execute(ctx context.Context, query usecases.GetTicketQuery) (*usecases.GetTicketResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockDeleteTicketUC struct {
	calls []string
	err   error
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, cmd usecases.DeleteTicketCommand) error {
	m.calls = append(m.calls, cmd.TicketID)
	return m.err
}

type mockFormContextUC struct {
	result *usecases.FormContext
}

func (m *mockFormContextUC) Execute(_ context.Context, _ session.Session) *usecases.FormContext {
	if m.result == nil {
		return &usecases.FormContext{}
	}
	return m.result
}

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

// fakeRenderer records the last page instead of executing templates.
type fakeRenderer struct {
	template string
	code     int
	data     pongo2.Context
	message  string
}

func (r *fakeRenderer) HTML(c *gin.Context, code int, name string, data pongo2.Context) {
	r.template = name
	r.code = code
	r.data = data
	c.Status(code)
	c.Writer.WriteHeaderNow()
}

func (r *fakeRenderer) Error(c *gin.Context, code int, message string) {
	r.template = "error.html"
	r.code = code
	r.message = message
	c.Status(code)
	c.Writer.WriteHeaderNow()
}

type flashCall struct {
	kind string
	text string
}

type fakeFlasher struct {
	calls []flashCall
}

func (f *fakeFlasher) Add(_ *gin.Context, kind, text string) {
	f.calls = append(f.calls, flashCall{kind: kind, text: text})
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func mustTicket(id, title string, status vo.TicketStatus, tags ...string) *ticket.Ticket {
	t, err := ticket.ReconstructTicket(
		id, title, title+" description", status, vo.PriorityMedium,
		"", "user-001", tags, fixedNow.Add(-time.Hour), fixedNow,
	)
	if err != nil {
		panic(err)
	}
	return t
}

func detailResult(t *ticket.Ticket) *usecases.GetTicketResult {
	return &usecases.GetTicketResult{
		Ticket:          dto.ToTicketDTO(t),
		DescriptionHTML: template.HTML("<p>" + t.Description() + "</p>"),
		Entity:          t,
	}
}
