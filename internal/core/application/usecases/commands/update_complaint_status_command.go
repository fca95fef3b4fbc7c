package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateComplaintStatusCommandIsNotConstructed = errors.New(
	"UpdateComplaintStatusCommand must be created via NewUpdateComplaintStatusCommand constructor",
)

type UpdateComplaintStatusCommand struct {
	actor           kernel.Actor
	complaintID     kernel.UUID
	status          complaint.Status
	resolutionNotes string

	guard guard.ConstructorGuard
}

func NewUpdateComplaintStatusCommand(
	actor kernel.Actor,
	complaintID kernel.UUID,
	status, resolutionNotes string,
) (UpdateComplaintStatusCommand, error) {
	parsed, statusErr := complaint.ParseStatus(status)
	if err := errors.Join(actor.Validate(), complaintID.Validate(), statusErr); err != nil {
		return UpdateComplaintStatusCommand{}, err
	}
	return UpdateComplaintStatusCommand{
		actor:           actor,
		complaintID:     complaintID,
		status:          parsed,
		resolutionNotes: strings.TrimSpace(resolutionNotes),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateComplaintStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateComplaintStatusCommandIsNotConstructed)
}

func (c UpdateComplaintStatusCommand) Actor() kernel.Actor      { return c.actor }
func (c UpdateComplaintStatusCommand) ComplaintID() kernel.UUID { return c.complaintID }
func (c UpdateComplaintStatusCommand) Status() complaint.Status { return c.status }
func (c UpdateComplaintStatusCommand) ResolutionNotes() string  { return c.resolutionNotes }
