package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// UpdatePaymentStatusCommandHandler records a payment outcome. Only admins may do
// this; other actors who can see the order get errs.ErrForbidden.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderPolicy
	sink       ports.NotificationSink
	metrics    ports.Metrics
}

func NewUpdatePaymentStatusCommandHandler(
	uowFactory OrderUoWFactory,
	sink ports.NotificationSink,
	metrics ports.Metrics,
) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
		sink:       sink,
		metrics:    metrics,
	}
}

func (h UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) (*order.Order, error) {
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

	if !h.policy.CanView(cmd.Actor(), o) {
		return nil, errs.NewObjectNotFoundError("orderId", o.ID().String())
	}
	if !cmd.Actor().IsAdmin() {
		return nil, errs.NewForbiddenError("only admins record payments")
	}

	previous := o.PaymentStatus()
	if err = o.ChangePaymentStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.metrics.StatusChanged("payment", previous.String(), o.PaymentStatus().String())
	h.sink.Notify(ctx, o.CustomerID(), notification.PaymentStatusChanged, notification.Data{
		"orderId":       o.ID().String(),
		"paymentStatus": o.PaymentStatus().String(),
	})

	return o, nil
}
