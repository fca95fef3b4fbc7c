package notificationrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements ports.NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewDatabaseError("add notification", err)
	}
	return nil
}

// Update writes the read state, the only mutable part of a notification.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"is_read": aggregate.IsRead(),
			"read_at": aggregate.ReadAt(),
		})
	if result.Error != nil {
		return errs.NewDatabaseError("update notification", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notificationId", aggregate.ID().String())
	}
	return nil
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notificationId", id.String())
		}
		return nil, errs.NewDatabaseError("get notification", err)
	}
	return toDomain(dto)
}

func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, userID kernel.UUID, readAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("user_id = ? AND is_read = ?", userID.Bytes(), false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": readAt,
		})
	if result.Error != nil {
		return 0, errs.NewDatabaseError("mark notifications read", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&NotificationDTO{})
	if result.Error != nil {
		return 0, errs.NewDatabaseError("purge notifications", result.Error)
	}
	return result.RowsAffected, nil
}
