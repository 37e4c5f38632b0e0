package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/user"
	"supplychain/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand overwrites every field of an existing user.
// Username and email are not checked; the role must still be defined.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	id     kernel.ID
	fields userFields

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(id kernel.ID, username, email string, role user.Role) (UpdateUserCommand, error) {
	if err := role.Validate(); err != nil {
		return UpdateUserCommand{}, err
	}

	return UpdateUserCommand{
		id: id,
		fields: userFields{
			Username: username,
			Email:    email,
			Role:     role,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) ID() kernel.ID {
	return c.id
}

func (c UpdateUserCommand) Username() string {
	return c.fields.Username
}

func (c UpdateUserCommand) Email() string {
	return c.fields.Email
}

func (c UpdateUserCommand) Role() user.Role {
	return c.fields.Role
}
