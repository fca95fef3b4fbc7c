package notification

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Type is the event a notification reports. The set is closed: every value has a
// template.
type Type string

const (
	OrderPlaced            Type = "order_placed"
	OrderStatusChanged     Type = "order_status_changed"
	OrderCancelled         Type = "order_cancelled"
	OrderItemCancelled     Type = "order_item_cancelled"
	DeliveryAssigned       Type = "delivery_assigned"
	DeliveryStatusChanged  Type = "delivery_status_changed"
	ProofUploaded          Type = "proof_uploaded"
	PaymentStatusChanged   Type = "payment_status_changed"
	ComplaintCreated       Type = "complaint_created"
	ComplaintStatusChanged Type = "complaint_status_changed"
)

type template struct {
	title   string
	message string
}

// Placeholders are {key} references into the notification data.
var templates = map[Type]template{
	OrderPlaced: {
		title:   "New order received",
		message: "Order {orderId} was placed for a total of {total}.",
	},
	OrderStatusChanged: {
		title:   "Order status updated",
		message: "Order {orderId} moved from {previousStatus} to {status}.",
	},
	OrderCancelled: {
		title:   "Order cancelled",
		message: "Order {orderId} was cancelled.",
	},
	OrderItemCancelled: {
		title:   "Order item cancelled",
		message: "An item of order {orderId} was cancelled. New total: {total}.",
	},
	DeliveryAssigned: {
		title:   "Delivery assigned",
		message: "Order {orderId} has been assigned for delivery.",
	},
	DeliveryStatusChanged: {
		title:   "Delivery update",
		message: "Delivery of order {orderId} is now {deliveryStatus}.",
	},
	ProofUploaded: {
		title:   "Proof of delivery uploaded",
		message: "A {proofType} was uploaded for order {orderId}.",
	},
	PaymentStatusChanged: {
		title:   "Payment update",
		message: "Payment for order {orderId} is now {paymentStatus}.",
	},
	ComplaintCreated: {
		title:   "New complaint",
		message: "Complaint \"{title}\" was opened.",
	},
	ComplaintStatusChanged: {
		title:   "Complaint update",
		message: "Your complaint \"{title}\" is now {status}.",
	},
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	if _, ok := templates[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a notification type", string(t)))
	}
	return nil
}

// Render fills the template of t with data. Placeholders without a value are left
// as they are.
func Render(t Type, data Data) (title, message string, err error) {
	tmpl, ok := templates[t]
	if !ok {
		return "", "", t.Validate()
	}

	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(v))
	}
	r := strings.NewReplacer(pairs...)
	return r.Replace(tmpl.title), r.Replace(tmpl.message), nil
}
