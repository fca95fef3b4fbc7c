package attachmentrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/attachment"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAttachmentRepository implements ports.AttachmentRepository using GORM.
type GormAttachmentRepository struct {
	db *gorm.DB
}

func NewGormAttachmentRepository(db *gorm.DB) *GormAttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

func (r *GormAttachmentRepository) Add(ctx context.Context, aggregate *attachment.Attachment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewDatabaseError("add attachment", err)
	}
	return nil
}

// Update writes the notes, the only mutable field of an attachment.
func (r *GormAttachmentRepository) Update(ctx context.Context, aggregate *attachment.Attachment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&AttachmentDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("notes", aggregate.Notes())
	if result.Error != nil {
		return errs.NewDatabaseError("update attachment", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("attachmentId", aggregate.ID().String())
	}
	return nil
}

func (r *GormAttachmentRepository) Get(ctx context.Context, id kernel.UUID) (*attachment.Attachment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AttachmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("attachmentId", id.String())
		}
		return nil, errs.NewDatabaseError("get attachment", err)
	}
	return toDomain(dto)
}

func (r *GormAttachmentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*attachment.Attachment, error) {
	var dtos []AttachmentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewDatabaseError("list attachments", err)
	}

	attachments := make([]*attachment.Attachment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}
