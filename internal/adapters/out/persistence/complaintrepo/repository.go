package complaintrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormComplaintRepository implements ports.ComplaintRepository using GORM.
type GormComplaintRepository struct {
	db *gorm.DB
}

func NewGormComplaintRepository(db *gorm.DB) *GormComplaintRepository {
	return &GormComplaintRepository{db: db}
}

func (r *GormComplaintRepository) Add(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewDatabaseError("add complaint", err)
	}
	return nil
}

func (r *GormComplaintRepository) Update(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&dto).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewDatabaseError("update complaint", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("complaintId", aggregate.ID().String())
	}
	return nil
}

func (r *GormComplaintRepository) Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	return r.load(ctx, r.db, id)
}

func (r *GormComplaintRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	return r.load(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormComplaintRepository) load(ctx context.Context, db *gorm.DB, id kernel.UUID) (*complaint.Complaint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ComplaintDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("complaintId", id.String())
		}
		return nil, errs.NewDatabaseError("get complaint", err)
	}
	return toDomain(dto)
}
