package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
		"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
	)
	ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
		"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
	)
)

type MarkNotificationReadCommand struct {
	actor          kernel.Actor
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkNotificationReadCommand(actor kernel.Actor, notificationID kernel.UUID) (MarkNotificationReadCommand, error) {
	if err := errors.Join(actor.Validate(), notificationID.Validate()); err != nil {
		return MarkNotificationReadCommand{}, err
	}
	return MarkNotificationReadCommand{
		actor:          actor,
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) Actor() kernel.Actor         { return c.actor }
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID { return c.notificationID }

type MarkAllNotificationsReadCommand struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewMarkAllNotificationsReadCommand(actor kernel.Actor) (MarkAllNotificationsReadCommand, error) {
	if err := actor.Validate(); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}
	return MarkAllNotificationsReadCommand{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

func (c MarkAllNotificationsReadCommand) Actor() kernel.Actor { return c.actor }
