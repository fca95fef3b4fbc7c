package complaint

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Type classifies what the complaint is about.
type Type string

const (
	TypeOrderIssue     Type = "order_issue"
	TypeDeliveryIssue  Type = "delivery_issue"
	TypeProductQuality Type = "product_quality"
	TypePaymentIssue   Type = "payment_issue"
	TypeOther          Type = "other"
)

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	switch t {
	case TypeOrderIssue, TypeDeliveryIssue, TypeProductQuality, TypePaymentIssue, TypeOther:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a complaint type", string(t)))
	}
}
