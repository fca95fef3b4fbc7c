package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand hands an order to a delivery person.
type AssignDeliveryCommand struct {
	actor            kernel.Actor
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDeliveryCommand(actor kernel.Actor, orderID, deliveryPersonID kernel.UUID) (AssignDeliveryCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate(), deliveryPersonID.Validate()); err != nil {
		return AssignDeliveryCommand{}, err
	}
	return AssignDeliveryCommand{
		actor:            actor,
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

func (c AssignDeliveryCommand) Actor() kernel.Actor           { return c.actor }
func (c AssignDeliveryCommand) OrderID() kernel.UUID          { return c.orderID }
func (c AssignDeliveryCommand) DeliveryPersonID() kernel.UUID { return c.deliveryPersonID }
