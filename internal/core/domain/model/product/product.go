package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry. Stock is changed by the storage layer with relative
// updates, so the value held here is only as fresh as the last load.
type Product struct {
	id        kernel.UUID
	sellerID  kernel.UUID
	name      string
	price     decimal.Decimal
	stock     int
	createdAt time.Time

	isConstructed bool
}

func NewProduct(id, sellerID kernel.UUID, name string, price decimal.Decimal, stock int, now time.Time) (*Product, error) {
	p := &Product{createdAt: now, isConstructed: true}
	if err := errors.Join(
		id.Validate(),
		sellerID.Validate(),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}
	p.id = id
	p.sellerID = sellerID
	return p, nil
}

func RestoreProduct(id, sellerID kernel.UUID, name string, price decimal.Decimal, stock int, createdAt time.Time) (*Product, error) {
	if err := errors.Join(id.Validate(), sellerID.Validate()); err != nil {
		return nil, err
	}
	return &Product{
		id:            id,
		sellerID:      sellerID,
		name:          name,
		price:         price,
		stock:         stock,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID        { return p.id }
func (p *Product) SellerID() kernel.UUID  { return p.sellerID }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Stock() int             { return p.stock }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
