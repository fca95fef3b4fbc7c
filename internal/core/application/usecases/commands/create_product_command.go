package commands

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand lists a new product for the acting seller.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	actor kernel.Actor
	name  string
	price decimal.Decimal
	stock int

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(actor kernel.Actor, name string, price decimal.Decimal, stock int) (CreateProductCommand, error) {
	cmd := CreateProductCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		actor.Validate(),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}
	cmd.actor = actor
	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Actor() kernel.Actor    { return c.actor }
func (c CreateProductCommand) Name() string           { return c.name }
func (c CreateProductCommand) Price() decimal.Decimal { return c.price }
func (c CreateProductCommand) Stock() int             { return c.stock }

func (c *CreateProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *CreateProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	c.stock = stock
	return nil
}
