package http

import (
	"time"

	"marketplace/internal/core/domain/model/attachment"
	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

type productView struct {
	ID        kernel.UUID     `json:"id"`
	SellerID  kernel.UUID     `json:"sellerId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"createdAt"`
}

func newProductView(p *product.Product) productView {
	return productView{
		ID:        p.ID(),
		SellerID:  p.SellerID(),
		Name:      p.Name(),
		Price:     p.Price(),
		Stock:     p.Stock(),
		CreatedAt: p.CreatedAt(),
	}
}

type orderItemView struct {
	ID          kernel.UUID     `json:"id"`
	ProductID   kernel.UUID     `json:"productId"`
	SellerID    kernel.UUID     `json:"sellerId"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
	Cancelled   bool            `json:"cancelled"`
	CancelledAt *time.Time      `json:"cancelledAt,omitempty"`
}

type orderView struct {
	ID                kernel.UUID     `json:"id"`
	CustomerID        kernel.UUID     `json:"customerId"`
	SellerID          kernel.UUID     `json:"sellerId"`
	DeliveryPersonID  *kernel.UUID    `json:"deliveryPersonId,omitempty"`
	Status            string          `json:"status"`
	PaymentStatus     string          `json:"paymentStatus"`
	DeliveryStatus    string          `json:"deliveryStatus"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Tax               decimal.Decimal `json:"tax"`
	Total             decimal.Decimal `json:"total"`
	ShippingAddress   string          `json:"shippingAddress"`
	Notes             string          `json:"notes,omitempty"`
	DeliveryNotes     string          `json:"deliveryNotes,omitempty"`
	TrackingNumber    string          `json:"trackingNumber,omitempty"`
	LastKnownLocation string          `json:"lastKnownLocation,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	Items             []orderItemView `json:"items"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	AssignedAt        *time.Time      `json:"assignedAt,omitempty"`
	PickedUpAt        *time.Time      `json:"pickedUpAt,omitempty"`
	DeliveredAt       *time.Time      `json:"deliveredAt,omitempty"`
	CompletedAt       *time.Time      `json:"completedAt,omitempty"`
	CancelledAt       *time.Time      `json:"cancelledAt,omitempty"`
	ReturnApprovedAt  *time.Time      `json:"returnApprovedAt,omitempty"`
}

func newOrderView(o *order.Order) orderView {
	s := o.Snapshot()

	items := make([]orderItemView, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, orderItemView{
			ID:          item.ID(),
			ProductID:   item.ProductID(),
			SellerID:    item.SellerID(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			LineTotal:   item.LineTotal(),
			Cancelled:   item.IsCancelled(),
			CancelledAt: item.CancelledAt(),
		})
	}

	return orderView{
		ID:                s.ID,
		CustomerID:        s.CustomerID,
		SellerID:          s.SellerID,
		DeliveryPersonID:  s.DeliveryPersonID,
		Status:            s.Status.String(),
		PaymentStatus:     s.PaymentStatus.String(),
		DeliveryStatus:    s.DeliveryStatus.String(),
		Subtotal:          s.Subtotal,
		Tax:               s.Tax,
		Total:             s.Total,
		ShippingAddress:   s.ShippingAddress,
		Notes:             s.Notes,
		DeliveryNotes:     s.DeliveryNotes,
		TrackingNumber:    s.TrackingNumber,
		LastKnownLocation: s.LastKnownLocation,
		EstimatedDelivery: s.EstimatedDelivery,
		Items:             items,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		AssignedAt:        s.AssignedAt,
		PickedUpAt:        s.PickedUpAt,
		DeliveredAt:       s.DeliveredAt,
		CompletedAt:       s.CompletedAt,
		CancelledAt:       s.CancelledAt,
		ReturnApprovedAt:  s.ReturnApprovedAt,
	}
}

type attachmentView struct {
	ID           kernel.UUID `json:"id"`
	OrderID      kernel.UUID `json:"orderId"`
	UploadedByID kernel.UUID `json:"uploadedById"`
	FileName     string      `json:"fileName"`
	Path         string      `json:"path"`
	MimeType     string      `json:"mimeType"`
	Size         int64       `json:"size"`
	ProofType    string      `json:"proofType"`
	Notes        string      `json:"notes,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func newAttachmentView(a *attachment.Attachment) attachmentView {
	return attachmentView{
		ID:           a.ID(),
		OrderID:      a.OrderID(),
		UploadedByID: a.UploadedByID(),
		FileName:     a.FileName(),
		Path:         a.Path(),
		MimeType:     a.MimeType(),
		Size:         a.Size(),
		ProofType:    string(a.ProofType()),
		Notes:        a.Notes(),
		CreatedAt:    a.CreatedAt(),
	}
}

type complaintView struct {
	ID              kernel.UUID  `json:"id"`
	UserID          kernel.UUID  `json:"userId"`
	OrderID         *kernel.UUID `json:"orderId,omitempty"`
	Type            string       `json:"type"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Status          string       `json:"status"`
	Attachments     []string     `json:"attachments"`
	ResolvedByID    *kernel.UUID `json:"resolvedById,omitempty"`
	ResolvedAt      *time.Time   `json:"resolvedAt,omitempty"`
	ResolutionNotes string       `json:"resolutionNotes,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

func newComplaintView(c *complaint.Complaint) complaintView {
	attachments := c.Attachments()
	if attachments == nil {
		attachments = []string{}
	}
	return complaintView{
		ID:              c.ID(),
		UserID:          c.UserID(),
		OrderID:         c.OrderID(),
		Type:            string(c.Type()),
		Title:           c.Title(),
		Description:     c.Description(),
		Status:          c.Status().String(),
		Attachments:     attachments,
		ResolvedByID:    c.ResolvedByID(),
		ResolvedAt:      c.ResolvedAt(),
		ResolutionNotes: c.ResolutionNotes(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

type notificationView struct {
	ID        kernel.UUID       `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Data      notification.Data `json:"data"`
	IsRead    bool              `json:"isRead"`
	ReadAt    *time.Time        `json:"readAt,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

func newNotificationView(n *notification.Notification) notificationView {
	return notificationView{
		ID:        n.ID(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Message:   n.Message(),
		Data:      n.Data(),
		IsRead:    n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}
}
