package order

import (
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Status is the overall lifecycle state of an order.
//
//	PENDING ─> CONFIRMED ─> PROCESSING ─> SHIPPED ─> DELIVERED ─> COMPLETED
//	   │           │            │            │           │
//	   └───────────┴────────────┴─> CANCELLED└───────────┴─> RETURN_REQUESTED
//	                                                           │
//	                          RETURN_REJECTED <────────────────┤
//	                                                           v
//	                                 RETURN_COMPLETED <─ RETURN_APPROVED ─> REFUNDED
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota
	Pending
	Confirmed
	Processing
	Shipped
	Delivered
	Completed
	Cancelled
	Refunded
	ReturnRequested
	ReturnApproved
	ReturnRejected
	ReturnCompleted
)

var statusNames = map[Status]string{
	Pending:         "PENDING",
	Confirmed:       "CONFIRMED",
	Processing:      "PROCESSING",
	Shipped:         "SHIPPED",
	Delivered:       "DELIVERED",
	Completed:       "COMPLETED",
	Cancelled:       "CANCELLED",
	Refunded:        "REFUNDED",
	ReturnRequested: "RETURN_REQUESTED",
	ReturnApproved:  "RETURN_APPROVED",
	ReturnRejected:  "RETURN_REJECTED",
	ReturnCompleted: "RETURN_COMPLETED",
}

var statusTransitions = kernel.TransitionTable[Status]{
	Pending:         {Confirmed, Cancelled},
	Confirmed:       {Processing, Cancelled},
	Processing:      {Shipped, Cancelled},
	Shipped:         {Delivered, ReturnRequested},
	Delivered:       {ReturnRequested, Completed},
	ReturnRequested: {ReturnApproved, ReturnRejected},
	ReturnApproved:  {ReturnCompleted, Refunded},
	ReturnRejected:  {},
	ReturnCompleted: {},
	Refunded:        {},
	Cancelled:       {},
	Completed:       {},
}

// AllStatuses lists every valid order status in declaration order.
func AllStatuses() []Status {
	return []Status{
		Pending, Confirmed, Processing, Shipped, Delivered, Completed, Cancelled,
		Refunded, ReturnRequested, ReturnApproved, ReturnRejected, ReturnCompleted,
	}
}

// ParseStatus accepts the wire name of a status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, candidate := range statusNames {
		if candidate == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// AllowedTransitions returns the statuses reachable from s in one step.
func (s Status) AllowedTransitions() []Status {
	return statusTransitions.Allowed(s)
}

func (s Status) CanTransitionTo(next Status) bool {
	return statusTransitions.Can(s, next)
}

func (s Status) IsTerminal() bool {
	return statusTransitions.IsTerminal(s)
}

// TransitionTo checks the move s -> next against the table. The returned error is an
// *errs.InvalidTransitionError naming both statuses and the allowed set.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError(
			"order status", s.String(), next.String(), statusTransitions.Names(s, Status.String),
		)
	}
	return next, nil
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
