package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound      = errors.New("supplier application not found")
	ErrApplicationAlreadyExists = errors.New("supplier application already exists")
	ErrInvalidApplicationID     = errors.New("invalid application id")
	ErrInvalidUserID            = errors.New("invalid user id")
	ErrInvalidName              = errors.New("invalid name")
	ErrInvalidNationalID        = errors.New("invalid national id")
	ErrInvalidVehiclePlate      = errors.New("invalid vehicle plate")
	ErrInvalidTankerPhoto       = errors.New("invalid tanker photo")
	ErrSupplierNotApproved      = errors.New("supplier not approved")
)

// ApplyInput carries a prospective supplier's registration form. The email
// comes from the verified identity, never from the form.
type ApplyInput struct {
	UserID       string
	Name         string
	NationalID   string
	VehiclePlate string
	Email        string
	TankerPhoto  string
}

// ISupplierUseCase exposes the supplier registry operations.
//
// Review flow:
//   - Apply() creates a pending application (one per user)
//   - Approve()/Suspend() are admin actions
//   - ApprovedByUserID() gates actions that require an approved supplier
type ISupplierUseCase interface {
	Apply(ctx context.Context, in ApplyInput) (entities.SupplierApplication, error)
	GetByID(ctx context.Context, id string) (entities.SupplierApplication, error)
	GetByUserID(ctx context.Context, userID string) (entities.SupplierApplication, error)
	ApprovedByUserID(ctx context.Context, userID string) (entities.SupplierApplication, error)
	List(ctx context.Context) ([]entities.SupplierApplication, error)
	ListApproved(ctx context.Context) ([]entities.SupplierApplication, error)
	Approve(ctx context.Context, id string) (entities.SupplierApplication, error)
	Suspend(ctx context.Context, id string) (entities.SupplierApplication, error)
}

type SupplierUseCase struct {
	repo interfaces.ISupplierApplicationRepository
}

var _ ISupplierUseCase = (*SupplierUseCase)(nil)

func NewSupplierUseCase(repo interfaces.ISupplierApplicationRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (u *SupplierUseCase) Apply(ctx context.Context, in ApplyInput) (entities.SupplierApplication, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return entities.SupplierApplication{}, ErrInvalidUserID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.SupplierApplication{}, ErrInvalidName
	}
	nationalID := strings.TrimSpace(in.NationalID)
	if nationalID == "" {
		return entities.SupplierApplication{}, ErrInvalidNationalID
	}
	plate := strings.ToUpper(strings.TrimSpace(in.VehiclePlate))
	if plate == "" {
		return entities.SupplierApplication{}, ErrInvalidVehiclePlate
	}
	photo := strings.TrimSpace(in.TankerPhoto)
	if !strings.HasPrefix(photo, "data:image/") {
		return entities.SupplierApplication{}, ErrInvalidTankerPhoto
	}

	// Enforce: 1 application per user.
	if existing, err := u.repo.GetByUserID(ctx, userID); err != nil {
		return entities.SupplierApplication{}, err
	} else if existing.ID != "" {
		return entities.SupplierApplication{}, ErrApplicationAlreadyExists
	}

	now := time.Now().UTC()
	a := entities.SupplierApplication{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         name,
		NationalID:   nationalID,
		VehiclePlate: plate,
		Email:        strings.TrimSpace(in.Email),
		TankerPhoto:  photo,
		Status:       entities.ApplicationStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.SupplierApplication{}, err
	}
	log.Printf("[supplier][usecase] application created id=%s user_id=%s plate=%s", created.ID, created.UserID, created.VehiclePlate)
	return created, nil
}

func (u *SupplierUseCase) GetByID(ctx context.Context, id string) (entities.SupplierApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SupplierApplication{}, ErrInvalidApplicationID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SupplierApplication{}, err
	}
	if a.ID == "" {
		return entities.SupplierApplication{}, ErrApplicationNotFound
	}
	return a, nil
}

func (u *SupplierUseCase) GetByUserID(ctx context.Context, userID string) (entities.SupplierApplication, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.SupplierApplication{}, ErrInvalidUserID
	}

	a, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.SupplierApplication{}, err
	}
	if a.ID == "" {
		return entities.SupplierApplication{}, ErrApplicationNotFound
	}
	return a, nil
}

func (u *SupplierUseCase) ApprovedByUserID(ctx context.Context, userID string) (entities.SupplierApplication, error) {
	a, err := u.GetByUserID(ctx, userID)
	if err != nil {
		return entities.SupplierApplication{}, err
	}
	if a.Status != entities.ApplicationStatusApproved {
		return entities.SupplierApplication{}, ErrSupplierNotApproved
	}
	return a, nil
}

func (u *SupplierUseCase) List(ctx context.Context) ([]entities.SupplierApplication, error) {
	return u.repo.List(ctx)
}

func (u *SupplierUseCase) ListApproved(ctx context.Context) ([]entities.SupplierApplication, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	approved := make([]entities.SupplierApplication, 0, len(all))
	for _, a := range all {
		if a.Status == entities.ApplicationStatusApproved {
			approved = append(approved, a)
		}
	}
	return approved, nil
}

func (u *SupplierUseCase) Approve(ctx context.Context, id string) (entities.SupplierApplication, error) {
	return u.updateStatus(ctx, id, entities.ApplicationStatusApproved)
}

func (u *SupplierUseCase) Suspend(ctx context.Context, id string) (entities.SupplierApplication, error) {
	return u.updateStatus(ctx, id, entities.ApplicationStatusSuspended)
}

func (u *SupplierUseCase) updateStatus(ctx context.Context, id string, status entities.ApplicationStatus) (entities.SupplierApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SupplierApplication{}, ErrInvalidApplicationID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.SupplierApplication{}, err
	}
	if updated.ID == "" {
		return entities.SupplierApplication{}, ErrApplicationNotFound
	}
	log.Printf("[supplier][usecase] application id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}
