package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one order line. Lines can be cancelled one by one while the order
// itself stays open.
type Item struct {
	id          kernel.UUID
	productID   kernel.UUID
	sellerID    kernel.UUID
	quantity    int
	unitPrice   decimal.Decimal
	cancelled   bool
	cancelledAt *time.Time
}

// StockRelease is the quantity of a product that goes back on the shelf.
type StockRelease struct {
	ProductID kernel.UUID
	Quantity  int
}

func NewItem(id, productID, sellerID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	item := &Item{}
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		sellerID.Validate(),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	item.id = id
	item.productID = productID
	item.sellerID = sellerID
	return item, nil
}

// RestoreItem rebuilds a line loaded from storage.
func RestoreItem(
	id, productID, sellerID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
	cancelledAt *time.Time,
) (*Item, error) {
	item, err := NewItem(id, productID, sellerID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	item.cancelled = cancelledAt != nil
	item.cancelledAt = cancelledAt
	return item, nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

func (i *Item) SellerID() kernel.UUID {
	return i.sellerID
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// LineTotal is unit price times quantity, regardless of cancellation.
func (i *Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) IsCancelled() bool {
	return i.cancelled
}

func (i *Item) CancelledAt() *time.Time {
	return i.cancelledAt
}

func (i *Item) cancel(now time.Time) StockRelease {
	i.cancelled = true
	i.cancelledAt = &now
	return i.release()
}

func (i *Item) release() StockRelease {
	return StockRelease{ProductID: i.productID, Quantity: i.quantity}
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", price))
	}
	i.unitPrice = price
	return nil
}
