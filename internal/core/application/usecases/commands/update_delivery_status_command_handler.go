package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler applies a delivery person's report.
//
// The order must be assigned to the reporting user; otherwise the handler returns
// errs.ErrForbidden and writes nothing. A pick-up can move the order to SHIPPED and a
// delivery to DELIVERED; both show up in the metrics and the customer notification.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	sink       ports.NotificationSink
	metrics    ports.Metrics
}

func NewUpdateDeliveryStatusCommandHandler(
	uowFactory OrderUoWFactory,
	sink ports.NotificationSink,
	metrics ports.Metrics,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		metrics:    metrics,
	}
}

func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) (*order.Order, error) {
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

	previousDelivery, previousStatus := o.DeliveryStatus(), o.Status()
	err = o.ChangeDeliveryStatus(cmd.Actor().ID, cmd.Status(), cmd.Notes(), cmd.Location(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.metrics.StatusChanged("delivery", previousDelivery.String(), o.DeliveryStatus().String())
	if o.Status() != previousStatus {
		h.metrics.StatusChanged("order", previousStatus.String(), o.Status().String())
		if o.Status() == order.Delivered {
			h.metrics.OrderDelivered(o.Total())
		}
	}
	h.sink.Notify(ctx, o.CustomerID(), notification.DeliveryStatusChanged, notification.Data{
		"orderId":        o.ID().String(),
		"deliveryStatus": o.DeliveryStatus().String(),
		"status":         o.Status().String(),
	})

	return o, nil
}
