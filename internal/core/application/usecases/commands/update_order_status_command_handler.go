package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies an order status change.
//
// Within one transaction it locks the order row, runs the OrderPolicy guards, applies
// the transition and its bookkeeping, puts released stock back and writes the order.
// Any failing write rolls everything back. After the commit it records metrics and
// notifies the customer, and the seller as well when the customer made the change.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(actor, orderID, "CANCELLED", "", "", nil)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order, or not visible to actor
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // the status table forbids the move
//	case errors.Is(err, errs.ErrForbidden):
//	    // actor's role may not request this status
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderPolicy
	sink       ports.NotificationSink
	metrics    ports.Metrics
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	sink ports.NotificationSink,
	metrics ports.Metrics,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
		sink:       sink,
		metrics:    metrics,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	if err = h.policy.AuthorizeStatusChange(cmd.Actor(), o, cmd.Status()); err != nil {
		return nil, err
	}

	previous := o.Status()
	releases, err := o.ChangeStatus(cmd.Status(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	o.SetShippingDetails(cmd.Notes(), cmd.TrackingNumber(), cmd.EstimatedDelivery())

	if err = releaseStock(ctx, uow, releases); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.metrics.StatusChanged("order", previous.String(), o.Status().String())
	if o.Status() == order.Delivered {
		h.metrics.OrderDelivered(o.Total())
	}
	h.notifyStatusChange(ctx, cmd.Actor(), o, previous)

	return o, nil
}

func (h UpdateOrderStatusCommandHandler) notifyStatusChange(ctx context.Context, actor kernel.Actor, o *order.Order, previous order.Status) {
	eventType := notification.OrderStatusChanged
	if o.Status() == order.Cancelled {
		eventType = notification.OrderCancelled
	}
	data := notification.Data{
		"orderId":        o.ID().String(),
		"previousStatus": previous.String(),
		"status":         o.Status().String(),
	}

	h.sink.Notify(ctx, o.CustomerID(), eventType, data)
	if actor.Is(o.CustomerID()) {
		h.sink.Notify(ctx, o.SellerID(), eventType, data)
	}
}

// releaseStock puts the released quantities back in the current transaction.
func releaseStock(ctx context.Context, uow ProductRepoFactory, releases []order.StockRelease) error {
	if len(releases) == 0 {
		return nil
	}
	repo := uow.ProductRepository()
	for _, r := range releases {
		if err := repo.ReleaseStock(ctx, r.ProductID, r.Quantity); err != nil {
			return err
		}
	}
	return nil
}
