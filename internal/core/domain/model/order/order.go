package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order that bypassed NewOrder / Restore.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrOrderHasNoItems       = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root for a checkout. It owns its lines and three
// independently tracked state machines: Status, PaymentStatus and DeliveryStatus.
//
// Invariants:
//   - every status only moves along its own transition table
//   - subtotal is the sum of non-cancelled line totals, total = subtotal + tax
//   - deliveryPersonID is set exactly when the delivery left PENDING through assignment
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	sellerID         kernel.UUID
	deliveryPersonID *kernel.UUID
	items            []*Item

	subtotal decimal.Decimal
	tax      decimal.Decimal
	total    decimal.Decimal

	status         Status
	paymentStatus  PaymentStatus
	deliveryStatus DeliveryStatus

	shippingAddress   string
	notes             string
	deliveryNotes     string
	trackingNumber    string
	lastKnownLocation string
	estimatedDelivery *time.Time

	createdAt        time.Time
	updatedAt        time.Time
	assignedAt       *time.Time
	pickedUpAt       *time.Time
	deliveredAt      *time.Time
	completedAt      *time.Time
	cancelledAt      *time.Time
	returnApprovedAt *time.Time

	isConstructed bool
}

// NewOrder places an order in PENDING with payment and delivery PENDING as well.
// Tax is subtotal × taxRate rounded to cents. The order's seller is the seller of
// its first line.
func NewOrder(
	id, customerID kernel.UUID,
	shippingAddress string,
	items []*Item,
	taxRate decimal.Decimal,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:         Pending,
		paymentStatus:  PaymentPending,
		deliveryStatus: DeliveryPending,
		createdAt:      now,
		updatedAt:      now,
		isConstructed:  true,
	}

	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		o.setShippingAddress(shippingAddress),
		o.setItems(items),
		validateTaxRate(taxRate),
	); err != nil {
		return nil, err
	}

	o.id = id
	o.customerID = customerID
	o.sellerID = items[0].SellerID()
	o.subtotal = o.activeSubtotal()
	o.tax = o.subtotal.Mul(taxRate).Round(2)
	o.total = o.subtotal.Add(o.tax)
	return o, nil
}

// Snapshot is the flat persisted form of an Order.
type Snapshot struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	SellerID          kernel.UUID
	DeliveryPersonID  *kernel.UUID
	Items             []*Item
	Subtotal          decimal.Decimal
	Tax               decimal.Decimal
	Total             decimal.Decimal
	Status            Status
	PaymentStatus     PaymentStatus
	DeliveryStatus    DeliveryStatus
	ShippingAddress   string
	Notes             string
	DeliveryNotes     string
	TrackingNumber    string
	LastKnownLocation string
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	AssignedAt        *time.Time
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time
	CompletedAt       *time.Time
	CancelledAt       *time.Time
	ReturnApprovedAt  *time.Time
}

// Restore rebuilds an order from storage, validating identifiers and enums.
func Restore(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.CustomerID.Validate(),
		s.SellerID.Validate(),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
		s.DeliveryStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if len(s.Items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	return &Order{
		id:                s.ID,
		customerID:        s.CustomerID,
		sellerID:          s.SellerID,
		deliveryPersonID:  s.DeliveryPersonID,
		items:             s.Items,
		subtotal:          s.Subtotal,
		tax:               s.Tax,
		total:             s.Total,
		status:            s.Status,
		paymentStatus:     s.PaymentStatus,
		deliveryStatus:    s.DeliveryStatus,
		shippingAddress:   s.ShippingAddress,
		notes:             s.Notes,
		deliveryNotes:     s.DeliveryNotes,
		trackingNumber:    s.TrackingNumber,
		lastKnownLocation: s.LastKnownLocation,
		estimatedDelivery: s.EstimatedDelivery,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
		assignedAt:        s.AssignedAt,
		pickedUpAt:        s.PickedUpAt,
		deliveredAt:       s.DeliveredAt,
		completedAt:       s.CompletedAt,
		cancelledAt:       s.CancelledAt,
		returnApprovedAt:  s.ReturnApprovedAt,
		isConstructed:     true,
	}, nil
}

func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                o.id,
		CustomerID:        o.customerID,
		SellerID:          o.sellerID,
		DeliveryPersonID:  o.deliveryPersonID,
		Items:             o.items,
		Subtotal:          o.subtotal,
		Tax:               o.tax,
		Total:             o.total,
		Status:            o.status,
		PaymentStatus:     o.paymentStatus,
		DeliveryStatus:    o.deliveryStatus,
		ShippingAddress:   o.shippingAddress,
		Notes:             o.notes,
		DeliveryNotes:     o.deliveryNotes,
		TrackingNumber:    o.trackingNumber,
		LastKnownLocation: o.lastKnownLocation,
		EstimatedDelivery: o.estimatedDelivery,
		CreatedAt:         o.createdAt,
		UpdatedAt:         o.updatedAt,
		AssignedAt:        o.assignedAt,
		PickedUpAt:        o.pickedUpAt,
		DeliveredAt:       o.deliveredAt,
		CompletedAt:       o.completedAt,
		CancelledAt:       o.cancelledAt,
		ReturnApprovedAt:  o.returnApprovedAt,
	}
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID                { return o.id }
func (o *Order) CustomerID() kernel.UUID        { return o.customerID }
func (o *Order) SellerID() kernel.UUID          { return o.sellerID }
func (o *Order) DeliveryPersonID() *kernel.UUID { return o.deliveryPersonID }
func (o *Order) Items() []*Item                 { return o.items }
func (o *Order) Subtotal() decimal.Decimal      { return o.subtotal }
func (o *Order) Tax() decimal.Decimal           { return o.tax }
func (o *Order) Total() decimal.Decimal         { return o.total }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) PaymentStatus() PaymentStatus   { return o.paymentStatus }
func (o *Order) DeliveryStatus() DeliveryStatus { return o.deliveryStatus }
func (o *Order) ShippingAddress() string        { return o.shippingAddress }
func (o *Order) Notes() string                  { return o.notes }
func (o *Order) DeliveryNotes() string          { return o.deliveryNotes }
func (o *Order) TrackingNumber() string         { return o.trackingNumber }
func (o *Order) LastKnownLocation() string      { return o.lastKnownLocation }
func (o *Order) EstimatedDelivery() *time.Time  { return o.estimatedDelivery }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) UpdatedAt() time.Time           { return o.updatedAt }
func (o *Order) AssignedAt() *time.Time         { return o.assignedAt }
func (o *Order) PickedUpAt() *time.Time         { return o.pickedUpAt }
func (o *Order) DeliveredAt() *time.Time        { return o.deliveredAt }
func (o *Order) CompletedAt() *time.Time        { return o.completedAt }
func (o *Order) CancelledAt() *time.Time        { return o.cancelledAt }
func (o *Order) ReturnApprovedAt() *time.Time   { return o.returnApprovedAt }

// HasSeller reports whether sellerID owns the order or at least one of its lines.
func (o *Order) HasSeller(sellerID kernel.UUID) bool {
	if o.sellerID.IsEqual(sellerID) {
		return true
	}
	for _, item := range o.items {
		if item.SellerID().IsEqual(sellerID) {
			return true
		}
	}
	return false
}

func (o *Order) IsAssignedTo(deliveryPersonID kernel.UUID) bool {
	return o.deliveryPersonID != nil && o.deliveryPersonID.IsEqual(deliveryPersonID)
}

// ChangeStatus moves the order along the status table and applies the in-aggregate
// bookkeeping of the target status. The returned releases are the stock quantities
// the caller must put back in the same transaction:
//   - CANCELLED: every line not cancelled yet (the lines become cancelled)
//   - RETURN_COMPLETED: every non-cancelled line
//
// On error the order is left untouched.
func (o *Order) ChangeStatus(next Status, now time.Time) ([]StockRelease, error) {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return nil, err
	}

	var releases []StockRelease
	switch newStatus {
	case Cancelled:
		releases = o.cancelActiveItems(now)
		o.cancelledAt = &now
		o.cancelDelivery()
	case Delivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &now
		}
	case Completed:
		o.completedAt = &now
	case ReturnApproved:
		o.returnApprovedAt = &now
	case ReturnCompleted:
		for _, item := range o.items {
			if !item.IsCancelled() {
				releases = append(releases, item.release())
			}
		}
	case Refunded:
		if o.paymentStatus.CanTransitionTo(PaymentRefunded) {
			o.paymentStatus = PaymentRefunded
		}
	}

	o.status = newStatus
	o.updatedAt = now
	return releases, nil
}

// SetShippingDetails records the optional fields that travel with a status update.
// Empty values leave the stored ones as they are.
func (o *Order) SetShippingDetails(notes, trackingNumber string, estimatedDelivery *time.Time) {
	if notes = strings.TrimSpace(notes); notes != "" {
		o.notes = notes
	}
	if trackingNumber = strings.TrimSpace(trackingNumber); trackingNumber != "" {
		o.trackingNumber = trackingNumber
	}
	if estimatedDelivery != nil {
		o.estimatedDelivery = estimatedDelivery
	}
}

// CancelItem cancels a single line while the order is PENDING or CONFIRMED and
// recomputes the totals, scaling tax with the subtotal. Cancelling the last open
// line cancels the whole order.
func (o *Order) CancelItem(itemID kernel.UUID, now time.Time) (StockRelease, error) {
	if o.status != Pending && o.status != Confirmed {
		return StockRelease{}, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("lines can only be cancelled while the order is PENDING or CONFIRMED, order is %s", o.status),
		)
	}

	var target *Item
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			target = item
			break
		}
	}
	if target == nil {
		return StockRelease{}, errs.NewObjectNotFoundError("itemId", itemID.String())
	}
	if target.IsCancelled() {
		return StockRelease{}, errs.NewValueIsInvalidErrorWithCause("item", fmt.Errorf("line %s is already cancelled", itemID))
	}

	release := target.cancel(now)
	o.recalculateTotals()

	if o.activeItemCount() == 0 {
		o.status = Cancelled
		o.cancelledAt = &now
		o.cancelDelivery()
	}

	o.updatedAt = now
	return release, nil
}

// AssignDeliveryPerson moves the delivery from PENDING to ASSIGNED.
func (o *Order) AssignDeliveryPerson(deliveryPersonID kernel.UUID, now time.Time) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("order is %s and can no longer be delivered", o.status),
		)
	}

	newStatus, err := o.deliveryStatus.TransitionTo(DeliveryAssigned)
	if err != nil {
		return err
	}

	o.deliveryStatus = newStatus
	o.deliveryPersonID = &deliveryPersonID
	o.assignedAt = &now
	o.updatedAt = now
	return nil
}

// ChangeDeliveryStatus applies a delivery person's progress report.
//
// Only the assigned delivery person may report (errs.ErrForbidden otherwise). On
// PICKED_UP a PROCESSING order becomes SHIPPED; on DELIVERED a SHIPPED order becomes
// DELIVERED and so eligible for completion. Non-empty notes and location overwrite
// the stored ones.
func (o *Order) ChangeDeliveryStatus(
	deliveryPersonID kernel.UUID,
	next DeliveryStatus,
	notes, location string,
	now time.Time,
) error {
	if !o.IsAssignedTo(deliveryPersonID) {
		return errs.NewForbiddenError("order is not assigned to this delivery person")
	}

	newStatus, err := o.deliveryStatus.TransitionTo(next)
	if err != nil {
		return err
	}

	switch newStatus {
	case DeliveryPickedUp:
		o.pickedUpAt = &now
		if o.status == Processing {
			o.status = Shipped
		}
	case DeliveryDelivered:
		o.deliveredAt = &now
		if o.status.CanTransitionTo(Delivered) {
			o.status = Delivered
		}
	}

	if notes = strings.TrimSpace(notes); notes != "" {
		o.deliveryNotes = notes
	}
	if location = strings.TrimSpace(location); location != "" {
		o.lastKnownLocation = location
	}

	o.deliveryStatus = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) ChangePaymentStatus(next PaymentStatus, now time.Time) error {
	newStatus, err := o.paymentStatus.TransitionTo(next)
	if err != nil {
		return err
	}
	o.paymentStatus = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) cancelActiveItems(now time.Time) []StockRelease {
	releases := make([]StockRelease, 0, len(o.items))
	for _, item := range o.items {
		if !item.IsCancelled() {
			releases = append(releases, item.cancel(now))
		}
	}
	return releases
}

func (o *Order) cancelDelivery() {
	if o.deliveryStatus.CanTransitionTo(DeliveryCancelled) {
		o.deliveryStatus = DeliveryCancelled
	}
}

func (o *Order) recalculateTotals() {
	previous := o.subtotal
	o.subtotal = o.activeSubtotal()
	if previous.IsZero() {
		o.tax = decimal.Zero
	} else {
		o.tax = o.tax.Mul(o.subtotal).Div(previous).Round(2)
	}
	o.total = o.subtotal.Add(o.tax)
}

func (o *Order) activeSubtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.items {
		if !item.IsCancelled() {
			sum = sum.Add(item.LineTotal())
		}
	}
	return sum
}

func (o *Order) activeItemCount() int {
	n := 0
	for _, item := range o.items {
		if !item.IsCancelled() {
			n++
		}
	}
	return n
}

func (o *Order) setShippingAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for i, item := range items {
		if item == nil {
			return errs.NewValueIsRequiredErrorWithCause("items", fmt.Errorf("line %d is nil", i))
		}
	}
	o.items = items
	return nil
}

func validateTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return errs.NewValueIsOutOfRangeError("tax rate", rate.String(), "0", "1")
	}
	return nil
}
