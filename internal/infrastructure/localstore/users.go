package localstore

import (
	"context"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/errors"
)

// UserStore is the fixture-backed user directory. It is read-only after construction.
type UserStore struct {
	order []string
	byID  map[string]*user.User
}

func NewUserStore(users []*user.User) *UserStore {
	s := &UserStore{byID: make(map[string]*user.User, len(users))}
	for _, u := range users {
		if _, dup := s.byID[u.ID()]; dup {
			continue
		}
		s.order = append(s.order, u.ID())
		s.byID[u.ID()] = u.Clone()
	}
	return s
}

// Find returns a copy of the user, or nil.
func (s *UserStore) Find(id string) *user.User {
	return s.byID[id].Clone()
}

func (s *UserStore) ListUsers(ctx context.Context) ([]*user.User, error) {
	out := make([]*user.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out, nil
}

func (s *UserStore) GetUser(ctx context.Context, id string) (*user.User, error) {
	if u := s.Find(id); u != nil {
		return u, nil
	}
	return nil, errors.NewNotFoundError("User not found", id)
}
