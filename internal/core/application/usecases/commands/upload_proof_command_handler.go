package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/attachment"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// UploadProofCommandHandler stores a proof image and records it as an attachment of
// the order. Every call creates a new attachment. When the attachment row cannot be
// written the stored file is removed again.
type UploadProofCommandHandler struct {
	uowFactory AttachmentUoWFactory
	storage    ports.FileStorage
	sink       ports.NotificationSink
	logger     *slog.Logger
}

func NewUploadProofCommandHandler(
	uowFactory AttachmentUoWFactory,
	storage ports.FileStorage,
	sink ports.NotificationSink,
	logger *slog.Logger,
) UploadProofCommandHandler {
	return UploadProofCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		sink:       sink,
		logger:     logger.With("component", "upload_proof_handler"),
	}
}

func (h UploadProofCommandHandler) Handle(ctx context.Context, cmd UploadProofCommand) (*attachment.Attachment, error) {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !o.IsAssignedTo(cmd.Actor().ID) {
		return nil, errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
	}

	id := kernel.NewUUID()
	path, err := h.storage.Save(ctx, cmd.File().StoredName(id), cmd.Content())
	if err != nil {
		return nil, err
	}

	a, err := h.record(ctx, uow, id, path, cmd)
	if err != nil {
		if rmErr := h.storage.Remove(ctx, path); rmErr != nil {
			h.logger.WarnContext(ctx, "failed to remove orphaned upload", "path", path, "error", rmErr)
		}
		return nil, err
	}

	h.sink.Notify(ctx, o.CustomerID(), notification.ProofUploaded, notification.Data{
		"orderId":   o.ID().String(),
		"proofType": string(a.ProofType()),
	})

	return a, nil
}

func (h UploadProofCommandHandler) record(
	ctx context.Context,
	uow AttachmentUoW,
	id kernel.UUID,
	path string,
	cmd UploadProofCommand,
) (*attachment.Attachment, error) {
	a, err := attachment.NewAttachment(
		id, cmd.OrderID(), cmd.Actor().ID, cmd.File(), path, cmd.ProofType(), cmd.Notes(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.AttachmentRepository().Add(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return a, nil
}
