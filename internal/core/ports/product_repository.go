package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository persists catalog entries. Stock is only ever changed relatively
// so that concurrent checkouts and cancellations never overwrite each other.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// ReserveStock decrements stock by quantity. It fails with errs.ErrValueIsInvalid
	// when less than quantity is left.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error

	// ReleaseStock increments stock by quantity.
	ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error
}
