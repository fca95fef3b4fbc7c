// Package attachmentrepo persists proof-of-delivery records in order_attachments.
package attachmentrepo

import (
	"time"

	"marketplace/internal/core/domain/model/attachment"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AttachmentDTO struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	OrderID      uuid.UUID `gorm:"type:char(36);not null;index"`
	UploadedByID uuid.UUID `gorm:"type:char(36);not null"`
	FileName     string    `gorm:"type:varchar(255);not null"`
	Path         string    `gorm:"type:varchar(512);not null"`
	MimeType     string    `gorm:"type:varchar(100);not null"`
	Size         int64     `gorm:"not null"`
	ProofType    string    `gorm:"type:varchar(20);not null"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false;not null;index"`
}

func (AttachmentDTO) TableName() string {
	return "order_attachments"
}

func fromDomain(a *attachment.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID().Bytes(),
		OrderID:      a.OrderID().Bytes(),
		UploadedByID: a.UploadedByID().Bytes(),
		FileName:     a.FileName(),
		Path:         a.Path(),
		MimeType:     a.MimeType(),
		Size:         a.Size(),
		ProofType:    string(a.ProofType()),
		Notes:        a.Notes(),
		CreatedAt:    a.CreatedAt(),
	}
}

func toDomain(dto AttachmentDTO) (*attachment.Attachment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	uploadedByID, err := kernel.UUIDFromBytes(dto.UploadedByID[:])
	if err != nil {
		return nil, err
	}
	return attachment.RestoreAttachment(
		id, orderID, uploadedByID,
		dto.FileName, dto.Path, dto.MimeType,
		dto.Size,
		attachment.ProofType(dto.ProofType),
		dto.Notes,
		dto.CreatedAt,
	)
}
