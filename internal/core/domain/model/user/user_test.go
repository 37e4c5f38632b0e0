package user_test

import (
	"testing"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/user"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should create user with valid fields", func(t *testing.T) {
		u, err := user.NewUser(3, "alice", "alice@example.com", user.Admin)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, kernel.ID(3), u.ID())
		assert.Equal(t, "alice", u.Username())
		assert.Equal(t, "alice@example.com", u.Email())
		assert.Equal(t, user.Admin, u.Role())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		u, err := user.NewUser(0, "", "", user.Unknown)

		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "username")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "role")
	})
}

func TestUser_Update(t *testing.T) {
	u, err := user.NewUser(0, "alice", "alice@example.com", user.Customer)
	require.NoError(t, err)

	u.Update("", "", user.Supplier)

	assert.Empty(t, u.Username())
	assert.Empty(t, u.Email())
	assert.Equal(t, user.Supplier, u.Role())
	assert.Equal(t, kernel.ID(0), u.ID())
}

func TestUser_Validate(t *testing.T) {
	var nilUser *user.User
	require.ErrorIs(t, nilUser.Validate(), user.ErrUserIsNotConstructed)
	require.ErrorIs(t, (&user.User{}).Validate(), user.ErrUserIsNotConstructed)
	require.NoError(t, user.RestoreUser(1, "", "", user.Unknown).Validate())
}

func TestParseRole(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected user.Role
	}{
		{"Admin", user.Admin},
		{"Supplier", user.Supplier},
		{"Customer", user.Customer},
	} {
		t.Run(tc.input, func(t *testing.T) {
			role, err := user.ParseRole(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
			assert.Equal(t, tc.input, role.String())
		})
	}

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, input := range []string{"Unknown", "admin", ""} {
			role, err := user.ParseRole(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, user.Unknown, role)
		}
	})

	t.Run("should stringify undefined roles as Unknown", func(t *testing.T) {
		assert.Equal(t, "Unknown", user.Role(17).String())
		require.Error(t, user.Role(17).Validate())
	})
}
