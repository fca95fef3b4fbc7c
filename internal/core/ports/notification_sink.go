package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
)

// NotificationSink records a user-facing notification after the triggering
// transaction has committed. Implementations log and swallow their own failures.
type NotificationSink interface {
	Notify(ctx context.Context, userID kernel.UUID, eventType notification.Type, data notification.Data)
}
