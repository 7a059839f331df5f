package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"ticketdesk/internal/application/session"
	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/logger"
)

// FormContext is the ancillary data a ticket form shows. Each slot is
// loaded independently and carries its own error.
type FormContext struct {
	Users          []*dto.UserDTO
	UsersErr       error
	CurrentUser    *dto.UserDTO
	CurrentUserErr error
}

type LoadFormContextUseCase struct {
	users  user.Directory
	logger logger.Interface
}

func NewLoadFormContextUseCase(users user.Directory, logger logger.Interface) *LoadFormContextUseCase {
	return &LoadFormContextUseCase{
		users:  users,
		logger: logger,
	}
}

// Execute loads the user list and the acting user concurrently. A failure in
// one slot never cancels or overwrites the other.
func (uc *LoadFormContextUseCase) Execute(ctx context.Context, sess session.Session) *FormContext {
	var (
		fc    FormContext
		g     errgroup.Group
		users []*user.User
		me    *user.User
	)

	g.Go(func() error {
		var err error
		users, err = uc.users.ListUsers(ctx)
		if err != nil {
			uc.logger.Warnw("failed to load users for form", "error", err)
			fc.UsersErr = err
		}
		return nil
	})

	if sess.HasUser() {
		g.Go(func() error {
			var err error
			me, err = uc.users.GetUser(ctx, sess.UserID)
			if err != nil {
				uc.logger.Warnw("failed to load current user", "user_id", sess.UserID, "error", err)
				fc.CurrentUserErr = err
			}
			return nil
		})
	}

	_ = g.Wait()

	fc.Users = dto.ToUserDTOs(users)
	fc.CurrentUser = dto.ToUserDTO(me)
	return &fc
}
