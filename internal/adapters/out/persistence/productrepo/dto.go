// Package productrepo persists catalog entries in the products table.
package productrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:char(36);primaryKey"`
	SellerID  uuid.UUID       `gorm:"type:char(36);not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock     int             `gorm:"not null"`
	CreatedAt time.Time       `gorm:"autoCreateTime:false;not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID().Bytes(),
		SellerID:  p.SellerID().Bytes(),
		Name:      p.Name(),
		Price:     p.Price(),
		Stock:     p.Stock(),
		CreatedAt: p.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(id, sellerID, dto.Name, dto.Price, dto.Stock, dto.CreatedAt)
}
