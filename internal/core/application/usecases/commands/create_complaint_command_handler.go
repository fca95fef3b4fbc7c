package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CreateComplaintCommandHandler opens a complaint. A referenced order must be visible
// to the complainant. Attached images go through the same storage as delivery proofs
// and are removed again if the complaint cannot be saved.
type CreateComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
	policy     services.OrderPolicy
	storage    ports.FileStorage
	sink       ports.NotificationSink
	logger     *slog.Logger
}

func NewCreateComplaintCommandHandler(
	uowFactory ComplaintUoWFactory,
	storage ports.FileStorage,
	sink ports.NotificationSink,
	logger *slog.Logger,
) CreateComplaintCommandHandler {
	return CreateComplaintCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderPolicy(),
		storage:    storage,
		sink:       sink,
		logger:     logger.With("component", "create_complaint_handler"),
	}
}

func (h CreateComplaintCommandHandler) Handle(ctx context.Context, cmd CreateComplaintCommand) (*complaint.Complaint, error) {
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

	if orderID := cmd.OrderID(); orderID != nil {
		o, err := uow.OrderRepository().Get(ctx, *orderID)
		if err != nil {
			return nil, err
		}
		if !h.policy.CanView(cmd.Actor(), o) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
	}

	paths := make([]string, 0, len(cmd.Uploads()))
	c, err := h.store(ctx, uow, cmd, &paths)
	if err != nil {
		h.cleanup(ctx, paths)
		return nil, err
	}

	h.sink.Notify(ctx, c.UserID(), notification.ComplaintCreated, notification.Data{
		"complaintId": c.ID().String(),
		"title":       c.Title(),
	})

	return c, nil
}

func (h CreateComplaintCommandHandler) store(
	ctx context.Context,
	uow ComplaintUoW,
	cmd CreateComplaintCommand,
	paths *[]string,
) (*complaint.Complaint, error) {
	for _, u := range cmd.Uploads() {
		path, err := h.storage.Save(ctx, u.File.StoredName(kernel.NewUUID()), u.Content)
		if err != nil {
			return nil, err
		}
		*paths = append(*paths, path)
	}

	c, err := complaint.NewComplaint(
		kernel.NewUUID(), cmd.Actor().ID, cmd.OrderID(), cmd.Type(),
		cmd.Title(), cmd.Description(), *paths, time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ComplaintRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (h CreateComplaintCommandHandler) cleanup(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := h.storage.Remove(ctx, path); err != nil {
			h.logger.WarnContext(ctx, "failed to remove orphaned upload", "path", path, "error", err)
		}
	}
}
