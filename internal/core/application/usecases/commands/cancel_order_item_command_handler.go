package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// CancelOrderItemCommandHandler cancels one line of an open order and puts its
// quantity back in stock. Cancelling the last open line cancels the order.
type CancelOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderPolicy
	sink       ports.NotificationSink
	metrics    ports.Metrics
}

func NewCancelOrderItemCommandHandler(
	uowFactory OrderUoWFactory,
	sink ports.NotificationSink,
	metrics ports.Metrics,
) CancelOrderItemCommandHandler {
	return CancelOrderItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
		sink:       sink,
		metrics:    metrics,
	}
}

func (h CancelOrderItemCommandHandler) Handle(ctx context.Context, cmd CancelOrderItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeItemCancel(cmd.Actor(), o, cmd.ItemID()); err != nil {
		return nil, err
	}

	previous := o.Status()
	release, err := o.CancelItem(cmd.ItemID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = releaseStock(ctx, uow, []order.StockRelease{release}); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	data := notification.Data{
		"orderId": o.ID().String(),
		"total":   o.Total().StringFixed(2),
	}
	if o.Status() != previous {
		h.metrics.StatusChanged("order", previous.String(), o.Status().String())
		data["status"] = o.Status().String()
		h.sink.Notify(ctx, o.CustomerID(), notification.OrderCancelled, data)
		h.sink.Notify(ctx, o.SellerID(), notification.OrderCancelled, data)
		return o, nil
	}
	h.sink.Notify(ctx, o.CustomerID(), notification.OrderItemCancelled, data)
	h.sink.Notify(ctx, o.SellerID(), notification.OrderItemCancelled, data)

	return o, nil
}
