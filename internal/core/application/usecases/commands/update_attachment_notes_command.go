package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateAttachmentNotesCommandIsNotConstructed = errors.New(
	"UpdateAttachmentNotesCommand must be created via NewUpdateAttachmentNotesCommand constructor",
)

type UpdateAttachmentNotesCommand struct {
	actor        kernel.Actor
	attachmentID kernel.UUID
	notes        string

	guard guard.ConstructorGuard
}

func NewUpdateAttachmentNotesCommand(actor kernel.Actor, attachmentID kernel.UUID, notes string) (UpdateAttachmentNotesCommand, error) {
	if err := errors.Join(actor.Validate(), attachmentID.Validate()); err != nil {
		return UpdateAttachmentNotesCommand{}, err
	}
	return UpdateAttachmentNotesCommand{
		actor:        actor,
		attachmentID: attachmentID,
		notes:        strings.TrimSpace(notes),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateAttachmentNotesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAttachmentNotesCommandIsNotConstructed)
}

func (c UpdateAttachmentNotesCommand) Actor() kernel.Actor       { return c.actor }
func (c UpdateAttachmentNotesCommand) AttachmentID() kernel.UUID { return c.attachmentID }
func (c UpdateAttachmentNotesCommand) Notes() string             { return c.notes }
