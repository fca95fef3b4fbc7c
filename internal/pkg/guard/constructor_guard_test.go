package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, errNotConstructed, g.Validate(errNotConstructed))
	})

	t.Run("zero_value_falls_back_to_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type reopenComplaint struct {
		reason string
		guard  guard.ConstructorGuard
	}
	errReopenNotConstructed := errors.New("reopenComplaint must be created via newReopenComplaint")

	newReopenComplaint := func(reason string) reopenComplaint {
		return reopenComplaint{reason: reason, guard: guard.NewConstructorGuard()}
	}

	built := newReopenComplaint("refund never arrived")
	require.NoError(t, built.guard.Validate(errReopenNotConstructed))
	assert.Equal(t, "refund never arrived", built.reason)

	literal := reopenComplaint{reason: "skipped constructor"}
	require.ErrorIs(t, literal.guard.Validate(errReopenNotConstructed), errReopenNotConstructed)
}
