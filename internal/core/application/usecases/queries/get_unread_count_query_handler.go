package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetUnreadCountQueryHandler struct {
	db *gorm.DB
}

func NewGetUnreadCountQueryHandler(db *gorm.DB) GetUnreadCountQueryHandler {
	return GetUnreadCountQueryHandler{db: db}
}

func (h GetUnreadCountQueryHandler) Handle(ctx context.Context, query GetUnreadCountQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = ? AND is_read = ?
	`, query.userID.Bytes(), false).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
