package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parties struct {
	customer kernel.Actor
	seller   kernel.Actor
	courier  kernel.Actor
	admin    kernel.Actor
	salesman kernel.Actor
	stranger kernel.Actor
}

func newParties() parties {
	return parties{
		customer: kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleCustomer},
		seller:   kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleSeller},
		courier:  kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleDelivery},
		admin:    kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleAdmin},
		salesman: kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleSalesman},
		stranger: kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleCustomer},
	}
}

func orderIn(t *testing.T, p parties, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), p.seller.ID, 1, decimal.NewFromInt(10))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), p.customer.ID, "addr", []*order.Item{item}, decimal.Zero, time.Now())
	require.NoError(t, err)

	s := o.Snapshot()
	s.Status = status
	courierID := p.courier.ID
	s.DeliveryPersonID = &courierID
	s.DeliveryStatus = order.DeliveryAssigned
	restored, err := order.Restore(s)
	require.NoError(t, err)
	return restored
}

func TestOrderPolicy_CanView(t *testing.T) {
	p := newParties()
	o := orderIn(t, p, order.Pending)
	policy := services.NewOrderPolicy()

	assert.True(t, policy.CanView(p.customer, o))
	assert.True(t, policy.CanView(p.seller, o))
	assert.True(t, policy.CanView(p.courier, o))
	assert.True(t, policy.CanView(p.admin, o))
	assert.False(t, policy.CanView(p.stranger, o))
	assert.False(t, policy.CanView(p.salesman, o))
	assert.False(t, policy.CanView(kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleSeller}, o))
}

func TestOrderPolicy_AuthorizeStatusChange(t *testing.T) {
	p := newParties()
	policy := services.NewOrderPolicy()

	tests := []struct {
		name    string
		actor   kernel.Actor
		current order.Status
		next    order.Status
		wantErr error
	}{
		{"customer cancels pending", p.customer, order.Pending, order.Cancelled, nil},
		{"customer cannot cancel confirmed", p.customer, order.Confirmed, order.Cancelled, errs.ErrValueIsInvalid},
		{"seller cancels confirmed", p.seller, order.Confirmed, order.Cancelled, nil},
		{"admin cancels processing", p.admin, order.Processing, order.Cancelled, nil},
		{"nobody cancels shipped", p.admin, order.Shipped, order.Cancelled, errs.ErrInvalidTransition},
		{"customer requests return", p.customer, order.Delivered, order.ReturnRequested, nil},
		{"customer completes", p.customer, order.Delivered, order.Completed, nil},
		{"customer cannot confirm", p.customer, order.Pending, order.Confirmed, errs.ErrForbidden},
		{"seller cannot request return", p.seller, order.Delivered, order.ReturnRequested, errs.ErrForbidden},
		{"seller approves return", p.seller, order.ReturnRequested, order.ReturnApproved, nil},
		{"courier cannot change status", p.courier, order.Processing, order.Shipped, errs.ErrForbidden},
		{"stranger sees nothing", p.stranger, order.Pending, order.Cancelled, errs.ErrObjectNotFound},
		{"table before role", p.customer, order.Shipped, order.Pending, errs.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := orderIn(t, p, tt.current)

			err := policy.AuthorizeStatusChange(tt.actor, o, tt.next)

			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.current, o.Status())
		})
	}
}

func TestOrderPolicy_InvalidTransitionIsValidation(t *testing.T) {
	p := newParties()
	o := orderIn(t, p, order.Shipped)

	err := services.NewOrderPolicy().AuthorizeStatusChange(p.admin, o, order.Pending)

	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, "SHIPPED", transitionErr.Current)
	assert.Equal(t, "PENDING", transitionErr.Requested)
	assert.Equal(t, []string{"DELIVERED", "RETURN_REQUESTED"}, transitionErr.Allowed)
}

func TestOrderPolicy_AuthorizeAssignment(t *testing.T) {
	p := newParties()
	o := orderIn(t, p, order.Confirmed)
	policy := services.NewOrderPolicy()

	require.NoError(t, policy.AuthorizeAssignment(p.admin, o))
	require.NoError(t, policy.AuthorizeAssignment(p.seller, o))
	require.ErrorIs(t, policy.AuthorizeAssignment(p.customer, o), errs.ErrForbidden)
	require.ErrorIs(t, policy.AuthorizeAssignment(p.stranger, o), errs.ErrObjectNotFound)
}

func TestOrderPolicy_AuthorizeItemCancel(t *testing.T) {
	p := newParties()
	policy := services.NewOrderPolicy()

	t.Run("pending order", func(t *testing.T) {
		o := orderIn(t, p, order.Pending)
		line := o.Items()[0].ID()

		require.NoError(t, policy.AuthorizeItemCancel(p.customer, o, line))
		require.ErrorIs(t, policy.AuthorizeItemCancel(p.courier, o, line), errs.ErrForbidden)
		require.ErrorIs(t, policy.AuthorizeItemCancel(p.stranger, o, line), errs.ErrObjectNotFound)
	})

	t.Run("last line of a confirmed order", func(t *testing.T) {
		o := orderIn(t, p, order.Confirmed)
		line := o.Items()[0].ID()

		err := policy.AuthorizeItemCancel(p.customer, o, line)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.NoError(t, policy.AuthorizeItemCancel(p.seller, o, line))
		require.NoError(t, policy.AuthorizeItemCancel(p.admin, o, line))
	})

	t.Run("one of several lines of a confirmed order", func(t *testing.T) {
		first, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), p.seller.ID, 1, decimal.NewFromInt(10))
		require.NoError(t, err)
		second, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), p.seller.ID, 1, decimal.NewFromInt(5))
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), p.customer.ID, "addr", []*order.Item{first, second}, decimal.Zero, time.Now())
		require.NoError(t, err)
		s := o.Snapshot()
		s.Status = order.Confirmed
		o, err = order.Restore(s)
		require.NoError(t, err)

		require.NoError(t, policy.AuthorizeItemCancel(p.customer, o, first.ID()))
	})
}
