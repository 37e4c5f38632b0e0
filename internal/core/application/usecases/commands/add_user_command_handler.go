package commands

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/user"
	"supplychain/internal/core/ports"
)

type AddUserCommandHandler struct {
	repo ports.UserRepository
}

func NewAddUserCommandHandler(repo ports.UserRepository) AddUserCommandHandler {
	return AddUserCommandHandler{repo: repo}
}

func (h *AddUserCommandHandler) Handle(ctx context.Context, cmd AddUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.repo.Create(ctx, func(id kernel.ID) (*user.User, error) {
		return user.NewUser(id, cmd.Username(), cmd.Email(), cmd.Role())
	})
}
