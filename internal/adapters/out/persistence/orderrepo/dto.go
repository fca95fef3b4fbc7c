// Package orderrepo maps the order aggregate onto the orders and order_items tables.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Timestamps are owned by the domain, so
// GORM's automatic create/update stamping is switched off.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:char(36);primaryKey"`
	CustomerID        uuid.UUID       `gorm:"type:char(36);not null;index"`
	SellerID          uuid.UUID       `gorm:"type:char(36);not null;index"`
	DeliveryPersonID  *uuid.UUID      `gorm:"type:char(36);index"`
	Subtotal          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Tax               decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total             decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status            int             `gorm:"type:smallint;not null;index"`
	PaymentStatus     int             `gorm:"type:smallint;not null"`
	DeliveryStatus    int             `gorm:"type:smallint;not null"`
	ShippingAddress   string          `gorm:"type:text;not null"`
	Notes             string          `gorm:"type:text"`
	DeliveryNotes     string          `gorm:"type:text"`
	TrackingNumber    string          `gorm:"type:varchar(100)"`
	LastKnownLocation string          `gorm:"type:varchar(255)"`
	EstimatedDelivery *time.Time
	CreatedAt         time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false;not null"`
	AssignedAt        *time.Time
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time
	CompletedAt       *time.Time
	CancelledAt       *time.Time
	ReturnApprovedAt  *time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line. Position keeps the checkout order of the lines.
type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:char(36);primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:char(36);not null;index"`
	ProductID   uuid.UUID       `gorm:"type:char(36);not null;index"`
	SellerID    uuid.UUID       `gorm:"type:char(36);not null;index"`
	Position    int             `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CancelledAt *time.Time
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Snapshot()

	items := make([]ItemDTO, 0, len(s.Items))
	for i, item := range s.Items {
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     s.ID.Bytes(),
			ProductID:   item.ProductID().Bytes(),
			SellerID:    item.SellerID().Bytes(),
			Position:    i,
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			CancelledAt: item.CancelledAt(),
		})
	}

	return OrderDTO{
		ID:                s.ID.Bytes(),
		CustomerID:        s.CustomerID.Bytes(),
		SellerID:          s.SellerID.Bytes(),
		DeliveryPersonID:  kernel.OptionalBytes(s.DeliveryPersonID),
		Subtotal:          s.Subtotal,
		Tax:               s.Tax,
		Total:             s.Total,
		Status:            int(s.Status),
		PaymentStatus:     int(s.PaymentStatus),
		DeliveryStatus:    int(s.DeliveryStatus),
		ShippingAddress:   s.ShippingAddress,
		Notes:             s.Notes,
		DeliveryNotes:     s.DeliveryNotes,
		TrackingNumber:    s.TrackingNumber,
		LastKnownLocation: s.LastKnownLocation,
		EstimatedDelivery: s.EstimatedDelivery,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		AssignedAt:        s.AssignedAt,
		PickedUpAt:        s.PickedUpAt,
		DeliveredAt:       s.DeliveredAt,
		CompletedAt:       s.CompletedAt,
		CancelledAt:       s.CancelledAt,
		ReturnApprovedAt:  s.ReturnApprovedAt,
		Items:             items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	deliveryPersonID, err := kernel.OptionalUUIDFromBytes(dto.DeliveryPersonID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.Restore(order.Snapshot{
		ID:                id,
		CustomerID:        customerID,
		SellerID:          sellerID,
		DeliveryPersonID:  deliveryPersonID,
		Items:             items,
		Subtotal:          dto.Subtotal,
		Tax:               dto.Tax,
		Total:             dto.Total,
		Status:            order.Status(dto.Status),
		PaymentStatus:     order.PaymentStatus(dto.PaymentStatus),
		DeliveryStatus:    order.DeliveryStatus(dto.DeliveryStatus),
		ShippingAddress:   dto.ShippingAddress,
		Notes:             dto.Notes,
		DeliveryNotes:     dto.DeliveryNotes,
		TrackingNumber:    dto.TrackingNumber,
		LastKnownLocation: dto.LastKnownLocation,
		EstimatedDelivery: dto.EstimatedDelivery,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
		AssignedAt:        dto.AssignedAt,
		PickedUpAt:        dto.PickedUpAt,
		DeliveredAt:       dto.DeliveredAt,
		CompletedAt:       dto.CompletedAt,
		CancelledAt:       dto.CancelledAt,
		ReturnApprovedAt:  dto.ReturnApprovedAt,
	})
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, productID, sellerID, dto.Quantity, dto.UnitPrice, dto.CancelledAt)
}
