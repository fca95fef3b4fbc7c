// Package notificationrepo persists in-app notifications. The notification data is
// stored as a JSON object in a text column.
package notificationrepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index:idx_notifications_user_read,priority:1"`
	Type      string    `gorm:"type:varchar(40);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	Data      string    `gorm:"type:text"`
	IsRead    bool      `gorm:"not null;index:idx_notifications_user_read,priority:2"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null;index"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) (NotificationDTO, error) {
	data := n.Data()
	if data == nil {
		data = notification.Data{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return NotificationDTO{}, err
	}

	return NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.UserID().Bytes(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Message:   n.Message(),
		Data:      string(raw),
		IsRead:    n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}, nil
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	data := notification.Data{}
	if dto.Data != "" {
		if err = json.Unmarshal([]byte(dto.Data), &data); err != nil {
			return nil, err
		}
	}

	return notification.RestoreNotification(
		id, userID,
		notification.Type(dto.Type),
		dto.Title, dto.Message,
		data,
		dto.ReadAt,
		dto.CreatedAt,
	)
}
