package usecase

import (
	"context"
	"errors"
	"testing"

	"moyo_dispatch/internal/domain/entities"
	mock_interfaces "moyo_dispatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validApplyInput() ApplyInput {
	return ApplyInput{
		UserID:       "uid-1",
		Name:         "Deng Majok",
		NationalID:   "SSD-99120",
		VehiclePlate: "ssd 104",
		Email:        "deng@example.com",
		TankerPhoto:  "data:image/jpeg;base64,/9j/4AAQ",
	}
}

func TestSupplierUseCase_Apply(t *testing.T) {
	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*ApplyInput)
			wantErr error
		}{
			{"missing user id", func(in *ApplyInput) { in.UserID = " " }, ErrInvalidUserID},
			{"missing name", func(in *ApplyInput) { in.Name = "" }, ErrInvalidName},
			{"missing national id", func(in *ApplyInput) { in.NationalID = "   " }, ErrInvalidNationalID},
			{"missing plate", func(in *ApplyInput) { in.VehiclePlate = "" }, ErrInvalidVehiclePlate},
			{"photo not a data url", func(in *ApplyInput) { in.TankerPhoto = "https://cdn/tanker.jpg" }, ErrInvalidTankerPhoto},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				// No repo expectations: invalid input must never reach storage.
				repo := mock_interfaces.NewMockISupplierApplicationRepository(ctrl)
				uc := NewSupplierUseCase(repo)

				in := validApplyInput()
				tc.mutate(&in)
				_, err := uc.Apply(context.Background(), in)
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})

	t.Run("creates pending application with uppercased plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierApplicationRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(entities.SupplierApplication{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.SupplierApplication) (entities.SupplierApplication, error) {
				if a.ID == "" || a.Status != entities.ApplicationStatusPending {
					t.Fatalf("unexpected application: %+v", a)
				}
				if a.VehiclePlate != "SSD 104" {
					t.Fatalf("expected uppercased plate, got %q", a.VehiclePlate)
				}
				return a, nil
			},
		)

		res, err := uc.Apply(context.Background(), validApplyInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.UserID != "uid-1" {
			t.Fatalf("unexpected user id: %s", res.UserID)
		}
	})

	t.Run("one application per user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierApplicationRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(entities.SupplierApplication{ID: "app-1", UserID: "uid-1"}, nil)

		_, err := uc.Apply(context.Background(), validApplyInput())
		if !errors.Is(err, ErrApplicationAlreadyExists) {
			t.Fatalf("expected ErrApplicationAlreadyExists, got %v", err)
		}
	})
}

func TestSupplierUseCase_GetByUserID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierApplicationRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().GetByUserID(gomock.Any(), "uid-9").Return(entities.SupplierApplication{}, nil)

		_, err := uc.GetByUserID(context.Background(), "uid-9")
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})
}

func TestSupplierUseCase_ApprovedByUserID(t *testing.T) {
	t.Run("pending application is not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierApplicationRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(entities.SupplierApplication{
			ID: "app-1", UserID: "uid-1", Status: entities.ApplicationStatusPending,
		}, nil)

		_, err := uc.ApprovedByUserID(context.Background(), "uid-1")
		if !errors.Is(err, ErrSupplierNotApproved) {
			t.Fatalf("expected ErrSupplierNotApproved, got %v", err)
		}
	})

	t.Run("approved application passes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierApplicationRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().GetByUserID(gomock.Any(), "uid-1").Return(entities.SupplierApplication{
			ID: "app-1", UserID: "uid-1", Status: entities.ApplicationStatusApproved,
		}, nil)

		a, err := uc.ApprovedByUserID(context.Background(), "uid-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID != "app-1" {
			t.Fatalf("unexpected application: %+v", a)
		}
	})
}

func TestSupplierUseCase_ListApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISupplierApplicationRepository(ctrl)
	uc := NewSupplierUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.SupplierApplication{
		{ID: "app-1", Status: entities.ApplicationStatusApproved},
		{ID: "app-2", Status: entities.ApplicationStatusPending},
		{ID: "app-3", Status: entities.ApplicationStatusSuspended},
	}, nil)

	approved, err := uc.ListApproved(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != "app-1" {
		t.Fatalf("unexpected result: %+v", approved)
	}
}

func TestSupplierUseCase_Approve(t *testing.T) {
	t.Run("marks application approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierApplicationRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "app-1", entities.ApplicationStatusApproved).Return(entities.SupplierApplication{
			ID: "app-1", Status: entities.ApplicationStatusApproved,
		}, nil)

		a, err := uc.Approve(context.Background(), "app-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Status != entities.ApplicationStatusApproved {
			t.Fatalf("unexpected status: %s", a.Status)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISupplierApplicationRepository(ctrl)
		uc := NewSupplierUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "ghost", entities.ApplicationStatusApproved).Return(entities.SupplierApplication{}, nil)

		_, err := uc.Approve(context.Background(), "ghost")
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("expected ErrApplicationNotFound, got %v", err)
		}
	})
}

func TestSupplierUseCase_Suspend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISupplierApplicationRepository(ctrl)
	uc := NewSupplierUseCase(repo)

	repo.EXPECT().UpdateStatus(gomock.Any(), "app-1", entities.ApplicationStatusSuspended).Return(entities.SupplierApplication{
		ID: "app-1", Status: entities.ApplicationStatusSuspended,
	}, nil)

	a, err := uc.Suspend(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != entities.ApplicationStatusSuspended {
		t.Fatalf("unexpected status: %s", a.Status)
	}
}
