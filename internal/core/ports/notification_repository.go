package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
)

// NotificationRepository persists notifications. Listing and counting for the inbox
// are read-model queries and live in the queries package.
type NotificationRepository interface {
	Add(ctx context.Context, aggregate *notification.Notification) error
	Update(ctx context.Context, aggregate *notification.Notification) error
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// MarkAllRead stamps readAt on every unread notification of userID and returns
	// how many rows changed.
	MarkAllRead(ctx context.Context, userID kernel.UUID, readAt time.Time) (int64, error)

	// DeleteReadBefore removes read notifications created before cutoff.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
