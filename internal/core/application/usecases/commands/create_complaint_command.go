package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"marketplace/internal/core/domain/model/attachment"
	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateComplaintCommandIsNotConstructed = errors.New(
	"CreateComplaintCommand must be created via NewCreateComplaintCommand constructor",
)

const maxComplaintFiles = 5

// Upload pairs an image's metadata with its bytes.
type Upload struct {
	File    attachment.File
	Content io.Reader
}

type CreateComplaintCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	complaintType complaint.Type
	title         string
	description   string
	orderID       *kernel.UUID
	uploads       []Upload

	guard guard.ConstructorGuard
}

func NewCreateComplaintCommand(
	actor kernel.Actor,
	complaintType string,
	title, description string,
	orderID *kernel.UUID,
	uploads []Upload,
) (CreateComplaintCommand, error) {
	cmd := CreateComplaintCommand{
		title:       strings.TrimSpace(title),
		description: strings.TrimSpace(description),
		orderID:     orderID,
		guard:       guard.NewConstructorGuard(),
	}

	parsed, typeErr := complaint.ParseType(complaintType)

	var orderErr error
	if orderID != nil {
		orderErr = orderID.Validate()
	}

	var titleErr, descriptionErr error
	if cmd.title == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}
	if cmd.description == "" {
		descriptionErr = errs.NewValueIsRequiredError("description")
	}

	if err := errors.Join(
		actor.Validate(),
		typeErr,
		titleErr,
		descriptionErr,
		orderErr,
		cmd.setUploads(uploads),
	); err != nil {
		return CreateComplaintCommand{}, err
	}

	cmd.actor = actor
	cmd.complaintType = parsed
	return cmd, nil
}

func (c CreateComplaintCommand) Validate() error {
	return c.guard.Validate(ErrCreateComplaintCommandIsNotConstructed)
}

func (c CreateComplaintCommand) Actor() kernel.Actor   { return c.actor }
func (c CreateComplaintCommand) Type() complaint.Type  { return c.complaintType }
func (c CreateComplaintCommand) Title() string         { return c.title }
func (c CreateComplaintCommand) Description() string   { return c.description }
func (c CreateComplaintCommand) OrderID() *kernel.UUID { return c.orderID }
func (c CreateComplaintCommand) Uploads() []Upload     { return c.uploads }

func (c *CreateComplaintCommand) setUploads(uploads []Upload) error {
	if len(uploads) > maxComplaintFiles {
		return errs.NewValueIsOutOfRangeError("files", len(uploads), 0, maxComplaintFiles)
	}
	for i, u := range uploads {
		if err := u.File.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("files[%d]", i), err)
		}
		if u.Content == nil {
			return errs.NewValueIsRequiredError(fmt.Sprintf("files[%d]", i))
		}
	}
	c.uploads = uploads
	return nil
}
