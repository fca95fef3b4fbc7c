package ports

import (
	"context"

	"marketplace/internal/core/domain/model/attachment"
	"marketplace/internal/core/domain/model/kernel"
)

type AttachmentRepository interface {
	Add(ctx context.Context, aggregate *attachment.Attachment) error
	Update(ctx context.Context, aggregate *attachment.Attachment) error
	Get(ctx context.Context, id kernel.UUID) (*attachment.Attachment, error)

	// ListByOrder returns the attachments of an order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*attachment.Attachment, error)
}
