package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRetentionSchedule runs the sweep daily at 03:00 (seconds field first).
const DefaultRetentionSchedule = "0 0 3 * * *"

// PurgeHandler is satisfied by commands.PurgeNotificationsCommandHandler.
type PurgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeNotificationsCommand) (int64, error)
}

// NotificationRetentionJob deletes read notifications older than the retention on a
// cron schedule.
type NotificationRetentionJob struct {
	handler   PurgeHandler
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewNotificationRetentionJob(
	handler PurgeHandler,
	retention time.Duration,
	schedule string,
	logger *slog.Logger,
) *NotificationRetentionJob {
	if schedule == "" {
		schedule = DefaultRetentionSchedule
	}
	return &NotificationRetentionJob{
		handler:   handler,
		retention: retention,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notification_retention_job"),
	}
}

func (j *NotificationRetentionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retention job started",
		"schedule", j.schedule, "retention", j.retention)
	return nil
}

// Stop waits for a running sweep to finish.
func (j *NotificationRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification retention job stopped")
}

func (j *NotificationRetentionJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewPurgeNotificationsCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification retention job misconfigured", "error", err)
		return
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification retention job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Read notifications purged", "deleted", deleted)
}
