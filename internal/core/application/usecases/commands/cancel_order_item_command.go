package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderItemCommandIsNotConstructed = errors.New(
	"CancelOrderItemCommand must be created via NewCancelOrderItemCommand constructor",
)

type CancelOrderItemCommand struct {
	actor   kernel.Actor
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderItemCommand(actor kernel.Actor, orderID, itemID kernel.UUID) (CancelOrderItemCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate(), itemID.Validate()); err != nil {
		return CancelOrderItemCommand{}, err
	}
	return CancelOrderItemCommand{
		actor:   actor,
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderItemCommandIsNotConstructed)
}

func (c CancelOrderItemCommand) Actor() kernel.Actor  { return c.actor }
func (c CancelOrderItemCommand) OrderID() kernel.UUID { return c.orderID }
func (c CancelOrderItemCommand) ItemID() kernel.UUID  { return c.itemID }
