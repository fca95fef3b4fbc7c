package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// GetOrderQueryHandler loads an order and hides it from actors who may not see it.
// Invisible orders are reported as not found rather than forbidden.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	policy services.OrderPolicy
}

func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, policy: services.NewOrderPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if !h.policy.CanView(query.Actor(), o) {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	return o, nil
}
