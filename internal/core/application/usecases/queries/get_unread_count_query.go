package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetUnreadCountQueryIsNotConstructed = errors.New(
		"GetUnreadCountQuery must be created via NewGetUnreadCountQuery constructor",
	)
)

// GetUnreadCountQuery counts the actor's unread notifications.
type GetUnreadCountQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUnreadCountQuery(actor kernel.Actor) (GetUnreadCountQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetUnreadCountQuery{}, err
	}
	return GetUnreadCountQuery{userID: actor.ID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUnreadCountQuery) Validate() error {
	return q.guard.Validate(ErrGetUnreadCountQueryIsNotConstructed)
}
