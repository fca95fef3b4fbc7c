package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// AssignDeliveryCommandHandler moves a delivery from PENDING to ASSIGNED and tells the
// delivery person and the customer.
type AssignDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderPolicy
	sink       ports.NotificationSink
	metrics    ports.Metrics
}

func NewAssignDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	sink ports.NotificationSink,
	metrics ports.Metrics,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
		sink:       sink,
		metrics:    metrics,
	}
}

func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) (*order.Order, error) {
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

	if err = h.policy.AuthorizeAssignment(cmd.Actor(), o); err != nil {
		return nil, err
	}

	previous := o.DeliveryStatus()
	if err = o.AssignDeliveryPerson(cmd.DeliveryPersonID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.metrics.StatusChanged("delivery", previous.String(), o.DeliveryStatus().String())
	data := notification.Data{"orderId": o.ID().String()}
	h.sink.Notify(ctx, cmd.DeliveryPersonID(), notification.DeliveryAssigned, data)
	h.sink.Notify(ctx, o.CustomerID(), notification.DeliveryAssigned, data)

	return o, nil
}
