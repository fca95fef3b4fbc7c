package queries

import (
	"context"

	"marketplace/internal/core/domain/model/attachment"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

type ListOrderAttachmentsQueryHandler struct {
	orders      ports.OrderRepository
	attachments ports.AttachmentRepository
	policy      services.OrderPolicy
}

func NewListOrderAttachmentsQueryHandler(
	orders ports.OrderRepository,
	attachments ports.AttachmentRepository,
) ListOrderAttachmentsQueryHandler {
	return ListOrderAttachmentsQueryHandler{
		orders:      orders,
		attachments: attachments,
		policy:      services.NewOrderPolicy(),
	}
}

// Handle returns the attachments oldest first, or errs.ErrObjectNotFound when the
// order is missing or not visible to the actor.
func (h ListOrderAttachmentsQueryHandler) Handle(
	ctx context.Context,
	query ListOrderAttachmentsQuery,
) ([]*attachment.Attachment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if !h.policy.CanView(query.Actor(), o) {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	return h.attachments.ListByOrder(ctx, o.ID())
}
