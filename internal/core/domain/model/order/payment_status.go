package order

import (
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
	PaymentFailed
	PaymentRefunded
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentPending:  "PENDING",
	PaymentPaid:     "PAID",
	PaymentFailed:   "FAILED",
	PaymentRefunded: "REFUNDED",
}

// A failed payment may be retried, which puts it back to PENDING.
var paymentTransitions = kernel.TransitionTable[PaymentStatus]{
	PaymentPending:  {PaymentPaid, PaymentFailed},
	PaymentFailed:   {PaymentPending},
	PaymentPaid:     {PaymentRefunded},
	PaymentRefunded: {},
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, candidate := range paymentStatusNames {
		if candidate == name {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid payment status", s),
	)
}

func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	if name, ok := paymentStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return paymentTransitions.Can(s, next)
}

func (s PaymentStatus) TransitionTo(next PaymentStatus) (PaymentStatus, error) {
	if err := next.Validate(); err != nil {
		return PaymentUnknown, err
	}
	if !s.CanTransitionTo(next) {
		return PaymentUnknown, errs.NewInvalidTransitionError(
			"payment status", s.String(), next.String(), paymentTransitions.Names(s, PaymentStatus.String),
		)
	}
	return next, nil
}

func (s PaymentStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
