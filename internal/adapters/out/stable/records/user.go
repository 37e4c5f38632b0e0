package records

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/user"
)

type UserRecord struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type UserCodec struct{}

func (UserCodec) Encode(u *user.User) ([]byte, error) {
	if err := checkText(textField{"username", u.Username()}, textField{"email", u.Email()}); err != nil {
		return nil, err
	}
	return encode(UserRecord{
		ID:       u.ID().Uint64(),
		Username: u.Username(),
		Email:    u.Email(),
		Role:     u.Role().String(),
	})
}

func (UserCodec) Decode(data []byte) (*user.User, error) {
	var r UserRecord
	if err := decode(data, &r); err != nil {
		return nil, err
	}

	role, err := user.ParseRole(r.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(kernel.ID(r.ID), r.Username, r.Email, role), nil
}
