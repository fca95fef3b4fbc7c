package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is a delivery person's progress report on an order.
type UpdateDeliveryStatusCommand struct {
	actor    kernel.Actor
	orderID  kernel.UUID
	status   order.DeliveryStatus
	notes    string
	location string

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	status, notes, location string,
) (UpdateDeliveryStatusCommand, error) {
	parsed, statusErr := order.ParseDeliveryStatus(status)
	if err := errors.Join(actor.Validate(), orderID.Validate(), statusErr); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	return UpdateDeliveryStatusCommand{
		actor:    actor,
		orderID:  orderID,
		status:   parsed,
		notes:    strings.TrimSpace(notes),
		location: strings.TrimSpace(location),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) Actor() kernel.Actor          { return c.actor }
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID         { return c.orderID }
func (c UpdateDeliveryStatusCommand) Status() order.DeliveryStatus { return c.status }
func (c UpdateDeliveryStatusCommand) Notes() string                { return c.notes }
func (c UpdateDeliveryStatusCommand) Location() string             { return c.location }
