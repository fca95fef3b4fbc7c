package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// UpdateComplaintStatusCommandHandler moves a complaint along its table. The owner is
// notified unless they made the change themselves.
type UpdateComplaintStatusCommandHandler struct {
	uowFactory ComplaintUoWFactory
	policy     services.ComplaintPolicy
	sink       ports.NotificationSink
	metrics    ports.Metrics
}

func NewUpdateComplaintStatusCommandHandler(
	uowFactory ComplaintUoWFactory,
	sink ports.NotificationSink,
	metrics ports.Metrics,
) UpdateComplaintStatusCommandHandler {
	return UpdateComplaintStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewComplaintPolicy(),
		sink:       sink,
		metrics:    metrics,
	}
}

func (h UpdateComplaintStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateComplaintStatusCommand,
) (*complaint.Complaint, error) {
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

	repo := uow.ComplaintRepository()
	c, err := repo.GetForUpdate(ctx, cmd.ComplaintID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeStatusChange(cmd.Actor(), c, cmd.Status()); err != nil {
		return nil, err
	}

	previous := c.Status()
	if err = c.ChangeStatus(cmd.Actor().ID, cmd.Status(), cmd.ResolutionNotes(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.metrics.StatusChanged("complaint", previous.String(), c.Status().String())
	if !cmd.Actor().Is(c.UserID()) {
		h.sink.Notify(ctx, c.UserID(), notification.ComplaintStatusChanged, notification.Data{
			"complaintId": c.ID().String(),
			"title":       c.Title(),
			"status":      c.Status().String(),
		})
	}

	return c, nil
}
