package user

import "context"

// Directory looks users up. Both ticket backends provide one.
type Directory interface {
	ListUsers(ctx context.Context) ([]*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
}
