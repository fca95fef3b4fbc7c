// Package ports defines the contracts between the marketplace core and its adapters:
// repositories bound to a unit of work, file storage, the notification sink and
// metrics.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their lines.
type OrderRepository interface {
	// Add persists a new order and its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order row and the cancellation state of its items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items. Returns errs.ErrObjectNotFound when missing.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the surrounding
	// transaction ends. Concurrent status changes on one order serialise here.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
