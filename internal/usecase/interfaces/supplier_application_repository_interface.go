package interfaces

import (
	"context"
	"moyo_dispatch/internal/domain/entities"
)

// ISupplierApplicationRepository abstracts DynamoDB persistence for
// SupplierApplication.
//
// The dispatch-service must be able to:
//   - create an application when an operator applies
//   - resolve an application by id and by owning user
//   - update status on admin review (approve/suspend)

type ISupplierApplicationRepository interface {
	Create(ctx context.Context, a entities.SupplierApplication) (entities.SupplierApplication, error)
	GetByID(ctx context.Context, id string) (entities.SupplierApplication, error)
	GetByUserID(ctx context.Context, userID string) (entities.SupplierApplication, error)
	List(ctx context.Context) ([]entities.SupplierApplication, error)
	UpdateStatus(ctx context.Context, id string, status entities.ApplicationStatus) (entities.SupplierApplication, error)
}
