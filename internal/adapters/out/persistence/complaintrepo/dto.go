// Package complaintrepo persists complaints. The attachment paths of a complaint
// are kept as a JSON array in a text column.
package complaintrepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ComplaintDTO struct {
	ID              uuid.UUID  `gorm:"type:char(36);primaryKey"`
	UserID          uuid.UUID  `gorm:"type:char(36);not null;index"`
	OrderID         *uuid.UUID `gorm:"type:char(36);index"`
	Type            string     `gorm:"type:varchar(30);not null"`
	Title           string     `gorm:"type:varchar(200);not null"`
	Description     string     `gorm:"type:text;not null"`
	Status          int        `gorm:"type:smallint;not null;index"`
	Attachments     string     `gorm:"type:text"`
	ResolvedByID    *uuid.UUID `gorm:"type:char(36)"`
	ResolvedAt      *time.Time
	ResolutionNotes string    `gorm:"type:text"`
	Reopened        bool      `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (ComplaintDTO) TableName() string {
	return "complaints"
}

func fromDomain(c *complaint.Complaint) (ComplaintDTO, error) {
	s := c.Snapshot()

	attachments := s.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	raw, err := json.Marshal(attachments)
	if err != nil {
		return ComplaintDTO{}, err
	}

	return ComplaintDTO{
		ID:              s.ID.Bytes(),
		UserID:          s.UserID.Bytes(),
		OrderID:         kernel.OptionalBytes(s.OrderID),
		Type:            string(s.Type),
		Title:           s.Title,
		Description:     s.Description,
		Status:          int(s.Status),
		Attachments:     string(raw),
		ResolvedByID:    kernel.OptionalBytes(s.ResolvedByID),
		ResolvedAt:      s.ResolvedAt,
		ResolutionNotes: s.ResolutionNotes,
		Reopened:        s.Reopened,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}, nil
}

func toDomain(dto ComplaintDTO) (*complaint.Complaint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.OptionalUUIDFromBytes(dto.OrderID)
	if err != nil {
		return nil, err
	}
	resolvedByID, err := kernel.OptionalUUIDFromBytes(dto.ResolvedByID)
	if err != nil {
		return nil, err
	}

	var attachments []string
	if dto.Attachments != "" {
		if err = json.Unmarshal([]byte(dto.Attachments), &attachments); err != nil {
			return nil, err
		}
	}

	return complaint.Restore(complaint.Snapshot{
		ID:              id,
		UserID:          userID,
		OrderID:         orderID,
		Type:            complaint.Type(dto.Type),
		Title:           dto.Title,
		Description:     dto.Description,
		Status:          complaint.Status(dto.Status),
		Attachments:     attachments,
		ResolvedByID:    resolvedByID,
		ResolvedAt:      dto.ResolvedAt,
		ResolutionNotes: dto.ResolutionNotes,
		Reopened:        dto.Reopened,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}
