package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	placedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	later    = placedAt.Add(2 * time.Hour)
)

func newTestOrder(t *testing.T, lines ...struct {
	qty   int
	price string
}) *order.Order {
	t.Helper()

	sellerID := kernel.NewUUID()
	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), sellerID, line.qty, decimal.RequireFromString(line.price))
		require.NoError(t, err)
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "12 Market Street", items, decimal.RequireFromString("0.10"), placedAt)
	require.NoError(t, err)
	return o
}

func twoLineOrder(t *testing.T) *order.Order {
	return newTestOrder(t,
		struct {
			qty   int
			price string
		}{2, "10.00"},
		struct {
			qty   int
			price string
		}{3, "5.50"},
	)
}

func withSnapshot(t *testing.T, o *order.Order, mutate func(*order.Snapshot)) *order.Order {
	t.Helper()
	s := o.Snapshot()
	mutate(&s)
	restored, err := order.Restore(s)
	require.NoError(t, err)
	return restored
}

func assignedOrder(t *testing.T, courierID kernel.UUID, status order.Status, delivery order.DeliveryStatus) *order.Order {
	return withSnapshot(t, twoLineOrder(t), func(s *order.Snapshot) {
		s.Status = status
		s.DeliveryStatus = delivery
		s.DeliveryPersonID = &courierID
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("computes totals and starts pending", func(t *testing.T) {
		o := twoLineOrder(t)

		assert.Equal(t, "36.5", o.Subtotal().String())
		assert.Equal(t, "3.65", o.Tax().String())
		assert.Equal(t, "40.15", o.Total().String())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, order.DeliveryPending, o.DeliveryStatus())
		assert.Equal(t, o.Items()[0].SellerID(), o.SellerID())
		assert.Equal(t, placedAt, o.CreatedAt())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "  ", nil, decimal.Zero, placedAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "shipping address")
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("rejects tax rate above one", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1, decimal.NewFromInt(1))
		require.NoError(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "addr", []*order.Item{item}, decimal.NewFromInt(2), placedAt)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
		assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
	})
}

func TestNewItem_Validation(t *testing.T) {
	_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, decimal.NewFromInt(1))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_CancelPendingReleasesEveryLine(t *testing.T) {
	o := twoLineOrder(t)

	releases, err := o.ChangeStatus(order.Cancelled, later)
	require.NoError(t, err)

	require.Len(t, releases, 2)
	released, ordered := 0, 0
	for i, item := range o.Items() {
		assert.Equal(t, item.ProductID(), releases[i].ProductID)
		assert.Equal(t, item.Quantity(), releases[i].Quantity)
		assert.True(t, item.IsCancelled())
		released += releases[i].Quantity
		ordered += item.Quantity()
	}
	assert.Equal(t, ordered, released)
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, order.DeliveryCancelled, o.DeliveryStatus())
	assert.Equal(t, &later, o.CancelledAt())
}

func TestOrder_CancelSkipsAlreadyCancelledLines(t *testing.T) {
	o := twoLineOrder(t)
	first := o.Items()[0]

	_, err := o.CancelItem(first.ID(), placedAt)
	require.NoError(t, err)

	releases, err := o.ChangeStatus(order.Cancelled, later)
	require.NoError(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, o.Items()[1].ProductID(), releases[0].ProductID)
	assert.Equal(t, 3, releases[0].Quantity)
}

func TestOrder_InvalidTransitionLeavesOrderUntouched(t *testing.T) {
	o := withSnapshot(t, twoLineOrder(t), func(s *order.Snapshot) { s.Status = order.Shipped })
	before := o.Snapshot()

	releases, err := o.ChangeStatus(order.Pending, later)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Nil(t, releases)
	assert.Equal(t, before, o.Snapshot())
}

func TestOrder_TerminalStatusesRejectEverything(t *testing.T) {
	for _, terminal := range []order.Status{
		order.Completed, order.Cancelled, order.Refunded, order.ReturnRejected, order.ReturnCompleted,
	} {
		for _, next := range order.AllStatuses() {
			o := withSnapshot(t, twoLineOrder(t), func(s *order.Snapshot) { s.Status = terminal })

			_, err := o.ChangeStatus(next, later)
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s", terminal, next)
			assert.Equal(t, terminal, o.Status())
		}
	}
}

func TestOrder_BookkeepingStamps(t *testing.T) {
	t.Run("delivered stamps delivery time", func(t *testing.T) {
		o := withSnapshot(t, twoLineOrder(t), func(s *order.Snapshot) { s.Status = order.Shipped })

		_, err := o.ChangeStatus(order.Delivered, later)
		require.NoError(t, err)
		assert.Equal(t, &later, o.DeliveredAt())
	})

	t.Run("completed", func(t *testing.T) {
		o := withSnapshot(t, twoLineOrder(t), func(s *order.Snapshot) { s.Status = order.Delivered })

		_, err := o.ChangeStatus(order.Completed, later)
		require.NoError(t, err)
		assert.Equal(t, &later, o.CompletedAt())
	})

	t.Run("return approved", func(t *testing.T) {
		o := withSnapshot(t, twoLineOrder(t), func(s *order.Snapshot) { s.Status = order.ReturnRequested })

		releases, err := o.ChangeStatus(order.ReturnApproved, later)
		require.NoError(t, err)
		assert.Empty(t, releases)
		assert.Equal(t, &later, o.ReturnApprovedAt())
	})

	t.Run("return completed releases stock without cancelling lines", func(t *testing.T) {
		o := withSnapshot(t, twoLineOrder(t), func(s *order.Snapshot) { s.Status = order.ReturnApproved })

		releases, err := o.ChangeStatus(order.ReturnCompleted, later)
		require.NoError(t, err)
		assert.Len(t, releases, 2)
		assert.False(t, o.Items()[0].IsCancelled())
	})

	t.Run("refund moves a paid payment to refunded", func(t *testing.T) {
		o := withSnapshot(t, twoLineOrder(t), func(s *order.Snapshot) {
			s.Status = order.ReturnApproved
			s.PaymentStatus = order.PaymentPaid
		})

		_, err := o.ChangeStatus(order.Refunded, later)
		require.NoError(t, err)
		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
	})
}

func TestOrder_SetShippingDetails(t *testing.T) {
	o := twoLineOrder(t)
	eta := later.Add(48 * time.Hour)

	o.SetShippingDetails("leave at door", "TRK-1", &eta)
	o.SetShippingDetails("", " ", nil)

	assert.Equal(t, "leave at door", o.Notes())
	assert.Equal(t, "TRK-1", o.TrackingNumber())
	assert.Equal(t, &eta, o.EstimatedDelivery())
}

func TestOrder_CancelItem(t *testing.T) {
	t.Run("recomputes totals proportionally", func(t *testing.T) {
		o := twoLineOrder(t)

		release, err := o.CancelItem(o.Items()[0].ID(), later)
		require.NoError(t, err)

		assert.Equal(t, 2, release.Quantity)
		assert.Equal(t, "16.5", o.Subtotal().String())
		assert.Equal(t, "1.65", o.Tax().String())
		assert.Equal(t, "18.15", o.Total().String())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cancelling the last line cancels the order", func(t *testing.T) {
		o := twoLineOrder(t)

		_, err := o.CancelItem(o.Items()[0].ID(), later)
		require.NoError(t, err)
		_, err = o.CancelItem(o.Items()[1].ID(), later)
		require.NoError(t, err)

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.DeliveryCancelled, o.DeliveryStatus())
		assert.True(t, o.Total().IsZero())
	})

	t.Run("twice is invalid", func(t *testing.T) {
		o := twoLineOrder(t)
		id := o.Items()[0].ID()

		_, err := o.CancelItem(id, later)
		require.NoError(t, err)
		_, err = o.CancelItem(id, later)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown line", func(t *testing.T) {
		o := twoLineOrder(t)

		_, err := o.CancelItem(kernel.NewUUID(), later)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("not after processing started", func(t *testing.T) {
		o := withSnapshot(t, twoLineOrder(t), func(s *order.Snapshot) { s.Status = order.Processing })

		_, err := o.CancelItem(o.Items()[0].ID(), later)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.False(t, o.Items()[0].IsCancelled())
	})
}

func TestOrder_AssignDeliveryPerson(t *testing.T) {
	courierID := kernel.NewUUID()

	t.Run("pending delivery becomes assigned", func(t *testing.T) {
		o := twoLineOrder(t)

		require.NoError(t, o.AssignDeliveryPerson(courierID, later))
		assert.Equal(t, order.DeliveryAssigned, o.DeliveryStatus())
		assert.True(t, o.IsAssignedTo(courierID))
		assert.Equal(t, &later, o.AssignedAt())
	})

	t.Run("second assignment is an invalid transition", func(t *testing.T) {
		o := assignedOrder(t, courierID, order.Confirmed, order.DeliveryAssigned)

		err := o.AssignDeliveryPerson(kernel.NewUUID(), later)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.True(t, o.IsAssignedTo(courierID))
	})

	t.Run("closed orders cannot be assigned", func(t *testing.T) {
		o := withSnapshot(t, twoLineOrder(t), func(s *order.Snapshot) { s.Status = order.Cancelled })

		err := o.AssignDeliveryPerson(courierID, later)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeDeliveryStatus(t *testing.T) {
	courierID := kernel.NewUUID()

	t.Run("pick up stamps time and ships a processing order", func(t *testing.T) {
		o := assignedOrder(t, courierID, order.Processing, order.DeliveryAssigned)

		require.NoError(t, o.ChangeDeliveryStatus(courierID, order.DeliveryPickedUp, "", "", later))
		assert.Equal(t, order.DeliveryPickedUp, o.DeliveryStatus())
		assert.Equal(t, &later, o.PickedUpAt())
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("delivered makes a shipped order completion eligible", func(t *testing.T) {
		o := assignedOrder(t, courierID, order.Shipped, order.DeliveryOutForDelivery)

		require.NoError(t, o.ChangeDeliveryStatus(courierID, order.DeliveryDelivered, "handed to neighbour", "gate 3", later))
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Status().CanTransitionTo(order.Completed))
		assert.Equal(t, &later, o.DeliveredAt())
		assert.Equal(t, "handed to neighbour", o.DeliveryNotes())
		assert.Equal(t, "gate 3", o.LastKnownLocation())
	})

	t.Run("someone else's order is forbidden and unchanged", func(t *testing.T) {
		o := assignedOrder(t, courierID, order.Shipped, order.DeliveryOutForDelivery)

		err := o.ChangeDeliveryStatus(kernel.NewUUID(), order.DeliveryDelivered, "", "", later)
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.DeliveryOutForDelivery, o.DeliveryStatus())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("unassigned order is forbidden", func(t *testing.T) {
		o := twoLineOrder(t)

		err := o.ChangeDeliveryStatus(courierID, order.DeliveryAssigned, "", "", later)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("invalid transition", func(t *testing.T) {
		o := assignedOrder(t, courierID, order.Processing, order.DeliveryAssigned)

		err := o.ChangeDeliveryStatus(courierID, order.DeliveryDelivered, "notes", "", later)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.DeliveryAssigned, o.DeliveryStatus())
		assert.Empty(t, o.DeliveryNotes())
	})
}

func TestOrder_HasSeller(t *testing.T) {
	o := twoLineOrder(t)

	assert.True(t, o.HasSeller(o.SellerID()))
	assert.False(t, o.HasSeller(kernel.NewUUID()))
}

func TestOrder_ChangePaymentStatus(t *testing.T) {
	o := twoLineOrder(t)

	require.NoError(t, o.ChangePaymentStatus(order.PaymentPaid, later))
	assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	require.ErrorIs(t, o.ChangePaymentStatus(order.PaymentFailed, later), errs.ErrInvalidTransition)
}

func TestRestore_RejectsInvalidSnapshot(t *testing.T) {
	s := twoLineOrder(t).Snapshot()
	s.Status = order.Unknown
	_, err := order.Restore(s)
	require.Error(t, err)

	s = twoLineOrder(t).Snapshot()
	s.Items = nil
	_, err = order.Restore(s)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
