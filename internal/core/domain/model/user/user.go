// Package user provides the User aggregate: an account with a username, an email
// address and a role.
package user

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

const EntityName = "user"

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

type User struct {
	id       kernel.ID
	username string
	email    string
	role     Role

	guard guard.ConstructorGuard
}

// NewUser creates a user. Username and email are required and role must be defined.
// All violations are reported together.
func NewUser(id kernel.ID, username, email string, role Role) (*User, error) {
	u := &User{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setUsername(username),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a user from storage without applying creation rules.
func RestoreUser(id kernel.ID, username, email string, role Role) *User {
	return &User{
		id:       id,
		username: username,
		email:    email,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.ID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() Role {
	return u.role
}

// Update replaces all mutable fields without checking creation rules.
func (u *User) Update(username, email string, role Role) {
	u.username = username
	u.email = email
	u.role = role
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
