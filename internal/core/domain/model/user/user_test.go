package user_test

import (
	"testing"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/user"
	"shipledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "ramesh", "$2a$10$hash", access.RoleStaff, access.UnrestrictedFieldSet(), time.Now())

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "ramesh", u.Username())
		assert.Equal(t, access.RoleStaff, u.Role())
	})

	t.Run("missing_username", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", "$2a$10$hash", access.RoleStaff, access.UnrestrictedFieldSet(), time.Now())
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("bad_role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "ramesh", "$2a$10$hash", access.Role("ROOT"), access.UnrestrictedFieldSet(), time.Now())
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("zero_value_invalid", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUser_Mutations(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "ramesh", "$2a$10$hash", access.RoleStaff, access.UnrestrictedFieldSet(), time.Now())
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(access.RoleAdmin))
	assert.Equal(t, access.RoleAdmin, u.Role())

	u.ChangeVisibleFields(access.NewFieldSet("trackingId,status"))
	assert.False(t, u.VisibleFields().IsUnrestricted())
	assert.True(t, u.VisibleFields().Allows("status"))

	require.NoError(t, u.ChangePasswordHash("$2a$10$other"))
	require.ErrorIs(t, u.ChangePasswordHash(""), errs.ErrValidation)
}
