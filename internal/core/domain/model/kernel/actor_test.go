package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := kernel.ParseRole(" Seller ")
	require.NoError(t, err)
	assert.Equal(t, kernel.RoleSeller, role)

	_, err = kernel.ParseRole("courier")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewActor(t *testing.T) {
	id := kernel.NewUUID()

	actor, err := kernel.NewActor(id, kernel.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, actor.Validate())
	assert.True(t, actor.IsAdmin())
	assert.True(t, actor.Is(id))
	assert.False(t, actor.Is(kernel.NewUUID()))

	_, err = kernel.NewActor(kernel.UUID{}, kernel.RoleAdmin)
	require.Error(t, err)

	_, err = kernel.NewActor(id, kernel.Role("root"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.Error(t, kernel.Actor{}.Validate())
}
