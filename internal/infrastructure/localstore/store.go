// Package localstore keeps tickets in process memory when no backend is configured.
//
// The store is the single owner of its collection: every access goes through
// one mutex, nothing is persisted, and callers always receive copies.
package localstore

import (
	"context"
	"sync"
	"time"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/infrastructure/metrics"
	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type TicketStore struct {
	mu      sync.Mutex
	order   []string
	tickets map[string]*ticket.Ticket

	users  *UserStore
	ids    ticket.IDGenerator
	now    func() time.Time
	logger logger.Interface
}

type Option func(*TicketStore)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *TicketStore) {
		s.now = now
	}
}

// WithIDGenerator replaces the default monotonic generator.
func WithIDGenerator(g ticket.IDGenerator) Option {
	return func(s *TicketStore) {
		s.ids = g
	}
}

// NewTicketStore seeds a store with tickets, which are copied in order.
func NewTicketStore(seed []*ticket.Ticket, users *UserStore, logger logger.Interface, opts ...Option) *TicketStore {
	s := &TicketStore{
		tickets: make(map[string]*ticket.Ticket, len(seed)),
		users:   users,
		ids:     &ticket.MonotonicIDGenerator{},
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.users == nil {
		s.users = NewUserStore(nil)
	}

	for _, t := range seed {
		if _, dup := s.tickets[t.ID()]; dup {
			continue
		}
		s.order = append(s.order, t.ID())
		s.tickets[t.ID()] = t.Clone()
		s.ids.Observe(t.ID())
	}
	metrics.SetStoreSize(len(s.order))

	return s
}

// Users returns the store's user directory.
func (s *TicketStore) Users() *UserStore {
	return s.users
}

// CreateTicket adds a ticket with a fresh id and createdAt = updatedAt = now.
func (s *TicketStore) CreateTicket(in ticket.CreateInput) (*ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.ids.Next(len(s.order), s.exists)
	if err != nil {
		metrics.ObserveStore("create", metrics.OutcomeError)
		return nil, err
	}

	t, err := ticket.NewTicket(id, in, s.now())
	if err != nil {
		metrics.ObserveStore("create", metrics.OutcomeError)
		return nil, err
	}

	s.order = append(s.order, id)
	s.tickets[id] = t
	metrics.ObserveStore("create", metrics.OutcomeOK)
	metrics.SetStoreSize(len(s.order))

	return s.withUsers(t), nil
}

// Apply merges patch into the ticket with id. It returns nil, nil when no
// such ticket exists.
func (s *TicketStore) Apply(id string, patch ticket.Patch) (*ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tickets[id]
	if !ok {
		metrics.ObserveStore("update", metrics.OutcomeNotFound)
		return nil, nil
	}

	// Work on a copy so a rejected patch leaves the stored ticket untouched.
	next := current.Clone()
	if err := next.Apply(patch, s.now()); err != nil {
		metrics.ObserveStore("update", metrics.OutcomeError)
		return nil, err
	}

	s.tickets[id] = next
	metrics.ObserveStore("update", metrics.OutcomeOK)
	return s.withUsers(next), nil
}

// Remove deletes the ticket with id and reports whether anything was removed.
func (s *TicketStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tickets[id]; !ok {
		metrics.ObserveStore("delete", metrics.OutcomeNotFound)
		return false
	}

	delete(s.tickets, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	metrics.ObserveStore("delete", metrics.OutcomeOK)
	metrics.SetStoreSize(len(s.order))
	return true
}

// Find returns a copy of the ticket, or nil.
func (s *TicketStore) Find(id string) *ticket.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil
	}
	return s.withUsers(t)
}

// All returns copies of every ticket in insertion order.
func (s *TicketStore) All() []*ticket.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*ticket.Ticket, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.withUsers(s.tickets[id]))
	}
	return out
}

// List implements ticket.Source. Meta is computed over the whole collection.
func (s *TicketStore) List(ctx context.Context) (*ticket.Page, error) {
	all := s.All()
	metrics.ObserveStore("list", metrics.OutcomeOK)
	return &ticket.Page{Tickets: all, Meta: computeMeta(all)}, nil
}

func (s *TicketStore) Get(ctx context.Context, id string) (*ticket.Ticket, error) {
	if t := s.Find(id); t != nil {
		return t, nil
	}
	metrics.ObserveStore("get", metrics.OutcomeNotFound)
	return nil, errors.NewNotFoundError(constants.ErrMsgNotFound, id)
}

func (s *TicketStore) Create(ctx context.Context, in ticket.CreateInput) (*ticket.Ticket, error) {
	t, err := s.CreateTicket(in)
	if err != nil {
		s.logger.Warnw("local store create failed", "error", err)
		return nil, err
	}
	s.logger.Infow("ticket created", "ticket_id", t.ID(), "created_by", t.CreatedBy())
	return t, nil
}

func (s *TicketStore) Update(ctx context.Context, id string, patch ticket.Patch) (*ticket.Ticket, error) {
	t, err := s.Apply(id, patch)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError(constants.ErrMsgNotFound, id)
	}
	s.logger.Infow("ticket updated", "ticket_id", id)
	return t, nil
}

func (s *TicketStore) Delete(ctx context.Context, id string) error {
	if !s.Remove(id) {
		return errors.NewNotFoundError(constants.ErrMsgNotFound, id)
	}
	s.logger.Infow("ticket deleted", "ticket_id", id)
	return nil
}

// ListUsers and GetUser let the store stand in as the user directory.
func (s *TicketStore) ListUsers(ctx context.Context) ([]*user.User, error) {
	return s.users.ListUsers(ctx)
}

func (s *TicketStore) GetUser(ctx context.Context, id string) (*user.User, error) {
	return s.users.GetUser(ctx, id)
}

func (s *TicketStore) exists(id string) bool {
	_, ok := s.tickets[id]
	return ok
}

// withUsers returns a copy of t carrying the current user snapshots.
func (s *TicketStore) withUsers(t *ticket.Ticket) *ticket.Ticket {
	c := t.Clone()
	c.AttachUsers(s.users.Find(t.AssignedTo()), s.users.Find(t.CreatedBy()))
	return c
}

func computeMeta(tickets []*ticket.Ticket) ticket.PageMeta {
	meta := ticket.PageMeta{
		TotalCount: len(tickets),
		Page:       1,
		Limit:      len(tickets),
		TotalPages: 1,
	}
	for _, t := range tickets {
		switch t.Status() {
		case vo.StatusOpen:
			meta.OpenCount++
		case vo.StatusInProgress:
			meta.InProgressCount++
		case vo.StatusResolved:
			meta.ResolvedCount++
		}
	}
	return meta
}
