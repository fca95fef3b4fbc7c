package ports

import (
	"context"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
)

type ComplaintRepository interface {
	Add(ctx context.Context, aggregate *complaint.Complaint) error
	Update(ctx context.Context, aggregate *complaint.Complaint) error
	Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error)

	// GetForUpdate locks the complaint row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error)
}
