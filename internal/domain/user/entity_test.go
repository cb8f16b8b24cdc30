//go:build unit

package user_test

import (
	"testing"

	"staybooking/internal/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		email, err := user.NewEmail("guest@example.com")
		require.NoError(t, err)
		role, err := user.NewRole("tourist")
		require.NoError(t, err)

		actual := user.NewUser(email, "hashed_password", role)

		expected := user.NewUser(email, "hashed_password", role)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email validation", func(t *testing.T) {
		cases := []struct {
			name  string
			email string
			errIs error
		}{
			{name: "valid email OK", email: "valid@example.com"},
			{name: "empty email NG", email: "", errIs: user.ErrInvalidEmail},
			{name: "malformed email NG", email: "invalid-email", errIs: user.ErrInvalidEmail},
			{name: "missing at sign NG", email: "invalidemail.com", errIs: user.ErrInvalidEmail},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := user.NewEmail(c.email)
				if c.errIs != nil {
					require.ErrorIs(t, err, c.errIs)
				} else {
					require.NoError(t, err)
				}
			})
		}
	})

	t.Run("role validation", func(t *testing.T) {
		for _, valid := range []string{"tourist", "owner", "admin"} {
			_, err := user.NewRole(valid)
			require.NoError(t, err)
		}
		_, err := user.NewRole("superuser")
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("lodging management permission", func(t *testing.T) {
		email, _ := user.NewEmail("owner@example.com")

		owner := user.NewUser(email, "hash", user.RoleOwner)
		tourist := user.NewUser(email, "hash", user.RoleTourist)
		admin := user.NewUser(email, "hash", user.RoleAdmin)

		assert.True(t, owner.CanManageLodgings())
		assert.True(t, admin.CanManageLodgings())
		assert.False(t, tourist.CanManageLodgings())
	})
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", p.Value())
}
