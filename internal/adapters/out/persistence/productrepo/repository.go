package productrepo

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewDatabaseError("add product", err)
	}
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", id.String())
		}
		return nil, errs.NewDatabaseError("get product", err)
	}
	return toDomain(dto)
}

// ReserveStock decrements stock in a single guarded UPDATE so two checkouts racing
// for the last units cannot both succeed.
func (r *GormProductRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND stock >= ?", id.Bytes(), quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return errs.NewDatabaseError("reserve stock", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"quantity",
		fmt.Errorf("insufficient stock for product %s", id.String()),
	)
}

func (r *GormProductRepository) ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return errs.NewDatabaseError("release stock", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", id.String())
	}
	return nil
}
