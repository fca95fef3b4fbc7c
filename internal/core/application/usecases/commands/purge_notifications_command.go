package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPurgeNotificationsCommandIsNotConstructed = errors.New(
	"PurgeNotificationsCommand must be created via NewPurgeNotificationsCommand constructor",
)

// PurgeNotificationsCommand deletes read notifications older than the retention.
type PurgeNotificationsCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeNotificationsCommand(retention time.Duration) (PurgeNotificationsCommand, error) {
	if retention <= 0 {
		return PurgeNotificationsCommand{}, errs.NewValueIsOutOfRangeError("retention", retention, "1ns", "unbounded")
	}
	return PurgeNotificationsCommand{retention: retention, guard: guard.NewConstructorGuard()}, nil
}

func (c PurgeNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeNotificationsCommandIsNotConstructed)
}

func (c PurgeNotificationsCommand) Retention() time.Duration { return c.retention }
