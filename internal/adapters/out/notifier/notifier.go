// Package notifier stores user-facing notifications once the change that triggered
// them has committed.
package notifier

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
)

// Notifier implements ports.NotificationSink on top of the notification repository.
// A failed notification is logged and dropped: the business change it reports has
// already been committed.
type Notifier struct {
	repo   ports.NotificationRepository
	logger *slog.Logger
	now    func() time.Time
}

func New(repo ports.NotificationRepository, logger *slog.Logger) *Notifier {
	return &Notifier{
		repo:   repo,
		logger: logger.With("component", "notifier"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (n *Notifier) Notify(ctx context.Context, userID kernel.UUID, eventType notification.Type, data notification.Data) {
	// the request may already be finished when the notification is written
	ctx = context.WithoutCancel(ctx)

	item, err := notification.NewNotification(kernel.NewUUID(), userID, eventType, data, n.now())
	if err != nil {
		n.logger.WarnContext(ctx, "notification not built",
			"type", string(eventType), "userId", userID.String(), "error", err)
		return
	}

	if err = n.repo.Add(ctx, item); err != nil {
		n.logger.WarnContext(ctx, "notification not stored",
			"type", string(eventType), "userId", userID.String(), "error", err)
		return
	}

	n.logger.DebugContext(ctx, "notification stored",
		"type", string(eventType), "userId", userID.String(), "notificationId", item.ID().String())
}
