package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

type UpdatePaymentStatusCommand struct {
	actor   kernel.Actor
	orderID kernel.UUID
	status  order.PaymentStatus

	guard guard.ConstructorGuard
}

func NewUpdatePaymentStatusCommand(actor kernel.Actor, orderID kernel.UUID, status string) (UpdatePaymentStatusCommand, error) {
	parsed, statusErr := order.ParsePaymentStatus(status)
	if err := errors.Join(actor.Validate(), orderID.Validate(), statusErr); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}
	return UpdatePaymentStatusCommand{
		actor:   actor,
		orderID: orderID,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

func (c UpdatePaymentStatusCommand) Actor() kernel.Actor         { return c.actor }
func (c UpdatePaymentStatusCommand) OrderID() kernel.UUID        { return c.orderID }
func (c UpdatePaymentStatusCommand) Status() order.PaymentStatus { return c.status }
