package commands

import (
	"context"

	"supplychain/internal/core/domain/model/user"
	"supplychain/internal/core/ports"
)

type UpdateUserCommandHandler struct {
	repo ports.UserRepository
}

func NewUpdateUserCommandHandler(repo ports.UserRepository) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{repo: repo}
}

func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.repo.Update(ctx, cmd.ID(), func(u *user.User) error {
		u.Update(cmd.Username(), cmd.Email(), cmd.Role())
		return nil
	})
}
