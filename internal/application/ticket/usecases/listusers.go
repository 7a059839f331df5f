package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/logger"
)

type ListUsersUseCase struct {
	users  user.Directory
	logger logger.Interface
}

func NewListUsersUseCase(users user.Directory, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		users:  users,
		logger: logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := uc.users.ListUsers(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return dto.ToUserDTOs(users), nil
}
