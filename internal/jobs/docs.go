// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field and are driven through
// JobManager:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewNotificationRetentionJob(purgeHandler, 30*24*time.Hour, "", logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// NotificationRetentionJob deletes read notifications older than the configured
// retention. Unread notifications are never purged.
package jobs
