package interfaces

import (
	"context"
	"moyo_dispatch/internal/domain/entities"
)

// IDemandRepository abstracts storage for DemandPoint.
//
// Demand is ephemeral state: the production implementation is an in-memory
// store scoped to the process lifetime. The dispatch-service must be able to:
//   - create a point when a household requests water
//   - advance its status (pending/on_the_way/supplied)
//   - record which supplier is en route
//
// Not-found is reported as a zero-value entity with a nil error; the use
// case converts that into its not-found sentinel.

type IDemandRepository interface {
	Create(ctx context.Context, d entities.DemandPoint) (entities.DemandPoint, error)
	GetByID(ctx context.Context, id string) (entities.DemandPoint, error)
	List(ctx context.Context) ([]entities.DemandPoint, error)
	UpdateStatus(ctx context.Context, id string, status entities.DemandStatus) (entities.DemandPoint, error)
	AssignSupplier(ctx context.Context, id string, supplierID string) (entities.DemandPoint, error)
}
