package http

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/attachment"
	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
)

// Handler is the shape shared by every command and query handler.
type Handler[Req, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

// Handlers lists the use cases the API exposes.
type Handlers struct {
	CreateProduct Handler[commands.CreateProductCommand, *product.Product]

	CreateOrder         Handler[commands.CreateOrderCommand, *order.Order]
	GetOrder            Handler[queries.GetOrderQuery, *order.Order]
	UpdateOrderStatus   Handler[commands.UpdateOrderStatusCommand, *order.Order]
	CancelOrderItem     Handler[commands.CancelOrderItemCommand, *order.Order]
	UpdatePaymentStatus Handler[commands.UpdatePaymentStatusCommand, *order.Order]

	AssignDelivery        Handler[commands.AssignDeliveryCommand, *order.Order]
	UpdateDeliveryStatus  Handler[commands.UpdateDeliveryStatusCommand, *order.Order]
	UploadProof           Handler[commands.UploadProofCommand, *attachment.Attachment]
	ListOrderAttachments  Handler[queries.ListOrderAttachmentsQuery, []*attachment.Attachment]
	UpdateAttachmentNotes Handler[commands.UpdateAttachmentNotesCommand, *attachment.Attachment]

	CreateComplaint       Handler[commands.CreateComplaintCommand, *complaint.Complaint]
	UpdateComplaintStatus Handler[commands.UpdateComplaintStatusCommand, *complaint.Complaint]

	ListNotifications        Handler[queries.ListNotificationsQuery, queries.ListNotificationsQueryResponse]
	GetUnreadCount           Handler[queries.GetUnreadCountQuery, int64]
	MarkNotificationRead     Handler[commands.MarkNotificationReadCommand, *notification.Notification]
	MarkAllNotificationsRead Handler[commands.MarkAllNotificationsReadCommand, int64]
}

// Server translates HTTP requests into commands and queries and their results into
// the JSON envelope.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http"),
	}
}
