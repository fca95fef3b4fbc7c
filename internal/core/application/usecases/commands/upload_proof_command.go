package commands

import (
	"errors"
	"io"
	"strings"

	"marketplace/internal/core/domain/model/attachment"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUploadProofCommandIsNotConstructed = errors.New(
	"UploadProofCommand must be created via NewUploadProofCommand constructor",
)

// UploadProofCommand carries one proof-of-delivery image. File rules are checked
// here, so an invalid upload never reaches storage.
type UploadProofCommand struct {
	actor     kernel.Actor
	orderID   kernel.UUID
	file      attachment.File
	content   io.Reader
	proofType attachment.ProofType
	notes     string

	guard guard.ConstructorGuard
}

func NewUploadProofCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	file attachment.File,
	content io.Reader,
	proofType string,
	notes string,
) (UploadProofCommand, error) {
	parsed, typeErr := attachment.ParseProofType(proofType)

	var contentErr error
	if content == nil {
		contentErr = errs.NewValueIsRequiredError("file")
	}

	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		file.Validate(),
		contentErr,
		typeErr,
	); err != nil {
		return UploadProofCommand{}, err
	}

	return UploadProofCommand{
		actor:     actor,
		orderID:   orderID,
		file:      file,
		content:   content,
		proofType: parsed,
		notes:     strings.TrimSpace(notes),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UploadProofCommand) Validate() error {
	return c.guard.Validate(ErrUploadProofCommandIsNotConstructed)
}

func (c UploadProofCommand) Actor() kernel.Actor             { return c.actor }
func (c UploadProofCommand) OrderID() kernel.UUID            { return c.orderID }
func (c UploadProofCommand) File() attachment.File           { return c.file }
func (c UploadProofCommand) Content() io.Reader              { return c.content }
func (c UploadProofCommand) ProofType() attachment.ProofType { return c.proofType }
func (c UploadProofCommand) Notes() string                   { return c.notes }
