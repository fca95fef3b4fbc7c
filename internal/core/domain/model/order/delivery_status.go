package order

import (
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// DeliveryStatus tracks the physical hand-off of an order, independently of Status.
//
//	PENDING ─> ASSIGNED ─> PICKED_UP ─> OUT_FOR_DELIVERY ─> DELIVERED
//	   │           │           │               │
//	   └───────────┴─> CANCELLED└───────────────┴─> RETURNED
type DeliveryStatus int

const (
	DeliveryUnknown DeliveryStatus = iota
	DeliveryPending
	DeliveryAssigned
	DeliveryPickedUp
	DeliveryOutForDelivery
	DeliveryDelivered
	DeliveryReturned
	DeliveryCancelled
)

var deliveryStatusNames = map[DeliveryStatus]string{
	DeliveryPending:        "PENDING",
	DeliveryAssigned:       "ASSIGNED",
	DeliveryPickedUp:       "PICKED_UP",
	DeliveryOutForDelivery: "OUT_FOR_DELIVERY",
	DeliveryDelivered:      "DELIVERED",
	DeliveryReturned:       "RETURNED",
	DeliveryCancelled:      "CANCELLED",
}

var deliveryTransitions = kernel.TransitionTable[DeliveryStatus]{
	DeliveryPending:        {DeliveryAssigned, DeliveryCancelled},
	DeliveryAssigned:       {DeliveryPickedUp, DeliveryCancelled},
	DeliveryPickedUp:       {DeliveryOutForDelivery, DeliveryReturned},
	DeliveryOutForDelivery: {DeliveryDelivered, DeliveryReturned},
	DeliveryDelivered:      {},
	DeliveryReturned:       {},
	DeliveryCancelled:      {},
}

func AllDeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{
		DeliveryPending, DeliveryAssigned, DeliveryPickedUp, DeliveryOutForDelivery,
		DeliveryDelivered, DeliveryReturned, DeliveryCancelled,
	}
}

func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, candidate := range deliveryStatusNames {
		if candidate == name {
			return status, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid delivery status", s),
	)
}

func (s DeliveryStatus) Validate() error {
	if _, ok := deliveryStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s DeliveryStatus) String() string {
	if name, ok := deliveryStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s DeliveryStatus) AllowedTransitions() []DeliveryStatus {
	return deliveryTransitions.Allowed(s)
}

func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	return deliveryTransitions.Can(s, next)
}

func (s DeliveryStatus) IsTerminal() bool {
	return deliveryTransitions.IsTerminal(s)
}

func (s DeliveryStatus) TransitionTo(next DeliveryStatus) (DeliveryStatus, error) {
	if err := next.Validate(); err != nil {
		return DeliveryUnknown, err
	}
	if !s.CanTransitionTo(next) {
		return DeliveryUnknown, errs.NewInvalidTransitionError(
			"delivery status", s.String(), next.String(), deliveryTransitions.Names(s, DeliveryStatus.String),
		)
	}
	return next, nil
}

func (s DeliveryStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
