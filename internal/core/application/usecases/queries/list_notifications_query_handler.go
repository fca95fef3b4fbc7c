package queries

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNotificationsQueryHandler reads the notifications table directly.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) (ListNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	filter := "user_id = ?"
	args := []any{query.userID.Bytes()}
	if query.unreadOnly {
		filter += " AND is_read = ?"
		args = append(args, false)
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM notifications WHERE `+filter, args...).
		Scan(&total).Error
	if err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			title,
			message,
			data,
			is_read,
			read_at,
			created_at
		FROM notifications
		WHERE `+filter+`
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, append(args, query.limit, query.offset)...).Rows()
	if err != nil {
		return ListNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]NotificationView, 0, query.limit)
	for rows.Next() {
		var view NotificationView
		var id uuid.UUID
		var data string
		var readAt *time.Time

		err = rows.Scan(
			&id,
			&view.Type,
			&view.Title,
			&view.Message,
			&data,
			&view.IsRead,
			&readAt,
			&view.CreatedAt,
		)
		if err != nil {
			return ListNotificationsQueryResponse{}, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListNotificationsQueryResponse{}, idErr
		}
		view.ID = notificationID
		view.ReadAt = readAt

		view.Data = map[string]any{}
		if data != "" {
			if err = json.Unmarshal([]byte(data), &view.Data); err != nil {
				return ListNotificationsQueryResponse{}, err
			}
		}
		items = append(items, view)
	}

	if err = rows.Err(); err != nil {
		return ListNotificationsQueryResponse{}, err
	}

	return ListNotificationsQueryResponse{
		Items:  items,
		Total:  total,
		Limit:  query.limit,
		Offset: query.offset,
	}, nil
}
