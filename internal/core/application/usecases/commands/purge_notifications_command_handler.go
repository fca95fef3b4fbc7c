package commands

import (
	"context"
	"time"
)

type PurgeNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewPurgeNotificationsCommandHandler(uowFactory NotificationUoWFactory) PurgeNotificationsCommandHandler {
	return PurgeNotificationsCommandHandler{uowFactory: uowFactory}
}

// Handle removes read notifications created before now minus the retention and
// returns how many were deleted. Unread notifications are kept regardless of age.
func (h PurgeNotificationsCommandHandler) Handle(ctx context.Context, cmd PurgeNotificationsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	deleted, err := uow.NotificationRepository().DeleteReadBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
