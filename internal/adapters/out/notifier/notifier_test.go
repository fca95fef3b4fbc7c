package notifier_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/adapters/out/notifier"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID kernel.UUID, readAt time.Time) (int64, error) {
	args := m.Called(ctx, userID, readAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestNotifier_StoresRenderedNotification(t *testing.T) {
	repo := new(MockNotificationRepository)
	user := kernel.NewUUID()

	var stored *notification.Notification
	repo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*notification.Notification) }).
		Return(nil).Once()

	n := notifier.New(repo, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	n.Notify(t.Context(), user, notification.OrderCancelled, notification.Data{"orderId": "A-7"})

	repo.AssertExpectations(t)
	require.NotNil(t, stored)
	assert.Equal(t, user, stored.UserID())
	assert.Equal(t, "Order A-7 was cancelled.", stored.Message())
	assert.False(t, stored.IsRead())
}

func TestNotifier_StoreFailureIsLoggedNotReturned(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	var logs bytes.Buffer
	n := notifier.New(repo, slog.New(slog.NewTextHandler(&logs, nil)))

	assert.NotPanics(t, func() {
		n.Notify(t.Context(), kernel.NewUUID(), notification.OrderPlaced, notification.Data{"orderId": "A-1", "total": "1.00"})
	})
	assert.Contains(t, logs.String(), "notification not stored")
	assert.Contains(t, logs.String(), "connection reset")
}

func TestNotifier_CancelledRequestStillStores(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("Add", mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), mock.Anything).
		Return(nil).Once()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	notifier.New(repo, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))).
		Notify(ctx, kernel.NewUUID(), notification.OrderPlaced, notification.Data{})

	repo.AssertExpectations(t)
}
