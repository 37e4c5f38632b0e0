package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/user"
	"supplychain/internal/pkg/guard"
	"supplychain/internal/pkg/validation"
)

var ErrAddUserCommandIsNotConstructed = errors.New(
	"AddUserCommand must be created via NewAddUserCommand constructor",
)

type userFields struct {
	Username string    `json:"username" validate:"required,utf8,max=64"`
	Email    string    `json:"email" validate:"required,utf8,max=254"`
	Role     user.Role `json:"role"`
}

// AddUserCommand represents a request to register a user account.
type AddUserCommand struct { //nolint:recvcheck //using for validation
	fields userFields

	guard guard.ConstructorGuard
}

// NewAddUserCommand requires username and email and a defined role.
// All violations are reported together.
func NewAddUserCommand(username, email string, role user.Role) (AddUserCommand, error) {
	fields := userFields{
		Username: username,
		Email:    email,
		Role:     role,
	}
	if err := errors.Join(validation.Struct(fields), role.Validate()); err != nil {
		return AddUserCommand{}, err
	}

	return AddUserCommand{
		fields: fields,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c AddUserCommand) Validate() error {
	return c.guard.Validate(ErrAddUserCommandIsNotConstructed)
}

func (c AddUserCommand) Username() string {
	return c.fields.Username
}

func (c AddUserCommand) Email() string {
	return c.fields.Email
}

func (c AddUserCommand) Role() user.Role {
	return c.fields.Role
}
