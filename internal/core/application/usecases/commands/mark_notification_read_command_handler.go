package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler marks one of the actor's notifications read.
// Somebody else's notification is reported as not found.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{uowFactory: uowFactory}
}

func (h MarkNotificationReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkNotificationReadCommand,
) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	n, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return nil, err
	}
	if !cmd.Actor().Is(n.UserID()) {
		return nil, errs.NewObjectNotFoundError("notificationId", cmd.NotificationID().String())
	}

	if n.IsRead() {
		return n, nil
	}
	n.MarkRead(time.Now().UTC())

	if err = repo.Update(ctx, n); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return n, nil
}

type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkAllNotificationsReadCommandHandler(uowFactory NotificationUoWFactory) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of notifications that were unread.
func (h MarkAllNotificationsReadCommandHandler) Handle(ctx context.Context, cmd MarkAllNotificationsReadCommand) (int64, error) {
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

	updated, err := uow.NotificationRepository().MarkAllRead(ctx, cmd.Actor().ID, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
