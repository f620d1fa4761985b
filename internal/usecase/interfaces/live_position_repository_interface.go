package interfaces

import (
	"context"
	"moyo_dispatch/internal/domain/entities"
)

// ILivePositionRepository abstracts storage for supplier live positions.
//
// Positions are display state, kept in memory. Upsert replaces any prior
// entry for the same supplier id, so at most one position exists per
// supplier at any time.

type ILivePositionRepository interface {
	Upsert(ctx context.Context, p entities.LivePosition) (entities.LivePosition, error)
	GetBySupplierID(ctx context.Context, supplierID string) (entities.LivePosition, error)
	Delete(ctx context.Context, supplierID string) error
	List(ctx context.Context) ([]entities.LivePosition, error)
}
