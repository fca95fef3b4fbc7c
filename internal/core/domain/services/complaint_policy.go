package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ComplaintPolicy decides what an actor may do with a complaint. Admins see and move
// every complaint; the owner sees their own and may only close or reopen it.
type ComplaintPolicy struct{}

func NewComplaintPolicy() ComplaintPolicy {
	return ComplaintPolicy{}
}

func (ComplaintPolicy) CanView(actor kernel.Actor, c *complaint.Complaint) bool {
	return actor.IsAdmin() || actor.Is(c.UserID())
}

// AuthorizeStatusChange returns errs.ErrObjectNotFound, errs.ErrInvalidTransition or
// errs.ErrForbidden, in that order of precedence.
func (p ComplaintPolicy) AuthorizeStatusChange(actor kernel.Actor, c *complaint.Complaint, next complaint.Status) error {
	if !p.CanView(actor, c) {
		return errs.NewObjectNotFoundError("complaintId", c.ID().String())
	}
	if _, err := c.Status().TransitionTo(next); err != nil {
		return err
	}
	if actor.IsAdmin() {
		return nil
	}
	if next != complaint.Closed && next != complaint.Reopened {
		return errs.NewForbiddenError(fmt.Sprintf("complaint owners cannot move a complaint to %s", next))
	}
	return nil
}
