package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	DefaultNotificationPageSize = 20
	MaxNotificationPageSize     = 100
)

var (
	ErrListNotificationsQueryIsNotConstructed = errors.New(
		"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
	)
)

// ListNotificationsQuery pages through the actor's own notifications, newest first.
// A zero limit selects DefaultNotificationPageSize.
//
// Example:
//
//	query, err := NewListNotificationsQuery(actor, true, 0, 0)
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d unread\n", len(page.Items), page.Total)
type ListNotificationsQuery struct {
	userID     kernel.UUID
	unreadOnly bool
	limit      int
	offset     int

	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(actor kernel.Actor, unreadOnly bool, limit, offset int) (ListNotificationsQuery, error) {
	if limit == 0 {
		limit = DefaultNotificationPageSize
	}

	var limitErr, offsetErr error
	if limit < 1 || limit > MaxNotificationPageSize {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxNotificationPageSize)
	}
	if offset < 0 {
		offsetErr = errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	if err := errors.Join(actor.Validate(), limitErr, offsetErr); err != nil {
		return ListNotificationsQuery{}, err
	}

	return ListNotificationsQuery{
		userID:     actor.ID,
		unreadOnly: unreadOnly,
		limit:      limit,
		offset:     offset,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) UnreadOnly() bool { return q.unreadOnly }
func (q ListNotificationsQuery) Limit() int       { return q.limit }
func (q ListNotificationsQuery) Offset() int      { return q.offset }

// NotificationView is one inbox row.
type NotificationView struct {
	ID        kernel.UUID    `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data"`
	IsRead    bool           `json:"isRead"`
	ReadAt    *time.Time     `json:"readAt,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

type ListNotificationsQueryResponse struct {
	Items  []NotificationView `json:"items"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}
