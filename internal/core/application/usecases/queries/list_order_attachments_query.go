package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListOrderAttachmentsQueryIsNotConstructed = errors.New(
		"ListOrderAttachmentsQuery must be created via NewListOrderAttachmentsQuery constructor",
	)
)

// ListOrderAttachmentsQuery lists the proof attachments of an order the actor can see.
type ListOrderAttachmentsQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListOrderAttachmentsQuery(actor kernel.Actor, orderID kernel.UUID) (ListOrderAttachmentsQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return ListOrderAttachmentsQuery{}, err
	}
	return ListOrderAttachmentsQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrderAttachmentsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderAttachmentsQueryIsNotConstructed)
}

func (q ListOrderAttachmentsQuery) Actor() kernel.Actor  { return q.actor }
func (q ListOrderAttachmentsQuery) OrderID() kernel.UUID { return q.orderID }
