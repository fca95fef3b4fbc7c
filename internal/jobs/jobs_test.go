package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purgeFunc func(ctx context.Context, cmd commands.PurgeNotificationsCommand) (int64, error)

func (f purgeFunc) Handle(ctx context.Context, cmd commands.PurgeNotificationsCommand) (int64, error) {
	return f(ctx, cmd)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotificationRetentionJob_Run(t *testing.T) {
	var got time.Duration
	job := NewNotificationRetentionJob(purgeFunc(func(_ context.Context, cmd commands.PurgeNotificationsCommand) (int64, error) {
		got = cmd.Retention()
		return 4, nil
	}), 72*time.Hour, "", discard())

	job.run()

	assert.Equal(t, 72*time.Hour, got)
	assert.Equal(t, DefaultRetentionSchedule, job.schedule)
}

func TestNotificationRetentionJob_RunSkipsInvalidRetention(t *testing.T) {
	called := false
	job := NewNotificationRetentionJob(purgeFunc(func(context.Context, commands.PurgeNotificationsCommand) (int64, error) {
		called = true
		return 0, nil
	}), 0, "", discard())

	job.run()

	assert.False(t, called)
}

func TestNotificationRetentionJob_Fires(t *testing.T) {
	fired := make(chan struct{}, 1)
	job := NewNotificationRetentionJob(purgeFunc(func(context.Context, commands.PurgeNotificationsCommand) (int64, error) {
		select {
		case fired <- struct{}{}:
		default:
		}
		return 0, errors.New("database unavailable")
	}), time.Hour, "* * * * * *", discard())

	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("retention job did not fire")
	}
}

type fakeJob struct {
	name     string
	startErr error
	log      *[]string
}

func (j fakeJob) Start() error {
	*j.log = append(*j.log, "start "+j.name)
	return j.startErr
}

func (j fakeJob) Stop() {
	*j.log = append(*j.log, "stop "+j.name)
}

func TestJobManager(t *testing.T) {
	t.Run("starts in order and stops in reverse", func(t *testing.T) {
		var log []string
		jm := NewJobManager(fakeJob{name: "a", log: &log}, fakeJob{name: "b", log: &log})

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, log)
	})

	t.Run("failed start stops the started jobs", func(t *testing.T) {
		var log []string
		jm := NewJobManager(
			fakeJob{name: "a", log: &log},
			fakeJob{name: "b", startErr: errors.New("bad schedule"), log: &log},
			fakeJob{name: "c", log: &log},
		)

		err := jm.StartAll()

		require.Error(t, err)
		assert.Equal(t, []string{"start a", "start b", "stop a"}, log)
	})

	t.Run("invalid cron schedule", func(t *testing.T) {
		job := NewNotificationRetentionJob(purgeFunc(nil), time.Hour, "every tuesday", discard())
		require.Error(t, NewJobManager(job).StartAll())
	})
}
