package commands

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand asks to move an order to a new status. The status arrives
// in its wire form and is parsed here, so an unknown name is rejected before any
// storage is touched.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor             kernel.Actor
	orderID           kernel.UUID
	status            order.Status
	notes             string
	trackingNumber    string
	estimatedDelivery *time.Time

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	status string,
	notes, trackingNumber string,
	estimatedDelivery *time.Time,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		actor:             actor,
		orderID:           orderID,
		notes:             strings.TrimSpace(notes),
		trackingNumber:    strings.TrimSpace(trackingNumber),
		estimatedDelivery: estimatedDelivery,
		guard:             guard.NewConstructorGuard(),
	}

	parsed, statusErr := order.ParseStatus(status)
	if err := errors.Join(actor.Validate(), orderID.Validate(), statusErr); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	cmd.status = parsed
	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Actor() kernel.Actor           { return c.actor }
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID          { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status          { return c.status }
func (c UpdateOrderStatusCommand) Notes() string                 { return c.notes }
func (c UpdateOrderStatusCommand) TrackingNumber() string        { return c.trackingNumber }
func (c UpdateOrderStatusCommand) EstimatedDelivery() *time.Time { return c.estimatedDelivery }
