package ports

import "github.com/shopspring/decimal"

// Metrics receives business counters once a change is committed.
type Metrics interface {
	// StatusChanged counts a committed transition of subject ("order", "delivery",
	// "payment", "complaint").
	StatusChanged(subject, from, to string)

	// OrderDelivered adds the order total to delivered revenue.
	OrderDelivered(total decimal.Decimal)
}
