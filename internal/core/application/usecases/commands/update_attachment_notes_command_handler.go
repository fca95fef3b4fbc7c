package commands

import (
	"context"

	"marketplace/internal/core/domain/model/attachment"
)

type UpdateAttachmentNotesCommandHandler struct {
	uowFactory AttachmentUoWFactory
}

func NewUpdateAttachmentNotesCommandHandler(uowFactory AttachmentUoWFactory) UpdateAttachmentNotesCommandHandler {
	return UpdateAttachmentNotesCommandHandler{uowFactory: uowFactory}
}

// Handle lets the uploader or an admin replace the notes of an attachment.
func (h UpdateAttachmentNotesCommandHandler) Handle(ctx context.Context, cmd UpdateAttachmentNotesCommand) (*attachment.Attachment, error) {
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

	repo := uow.AttachmentRepository()
	a, err := repo.Get(ctx, cmd.AttachmentID())
	if err != nil {
		return nil, err
	}

	if err = a.UpdateNotes(cmd.Actor(), cmd.Notes()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
