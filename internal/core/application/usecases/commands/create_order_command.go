package commands

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one product and quantity requested at checkout.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand is a customer's checkout. Prices and sellers come from the
// catalog, never from the request.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, "12 Market Street", []OrderLine{
//	    {ProductID: teaID, Quantity: 2},
//	})
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor           kernel.Actor
	shippingAddress string
	lines           []OrderLine

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(actor kernel.Actor, shippingAddress string, lines []OrderLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		actor.Validate(),
		cmd.setShippingAddress(shippingAddress),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.actor = actor
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() kernel.Actor     { return c.actor }
func (c CreateOrderCommand) ShippingAddress() string { return c.shippingAddress }
func (c CreateOrderCommand) Lines() []OrderLine      { return c.lines }

func (c *CreateOrderCommand) setShippingAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	c.shippingAddress = strings.TrimSpace(address)
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].productId", i), err)
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i), fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
	}
	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
