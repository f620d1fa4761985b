package usecase

import (
	"context"
	"errors"
	"testing"

	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/domain/geo"
	mock_interfaces "moyo_dispatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDemandUseCase_RequestWater(t *testing.T) {
	t.Run("invalid urgency", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil)
		_, err := uc.RequestWater(context.Background(), RequestWaterInput{Urgency: "urgent"})
		if !errors.Is(err, ErrInvalidUrgency) {
			t.Fatalf("expected ErrInvalidUrgency, got %v", err)
		}
	})

	t.Run("creates pending point with requests=1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.DemandPoint{})).DoAndReturn(
			func(_ context.Context, d entities.DemandPoint) (entities.DemandPoint, error) {
				if d.ID == "" || d.Status != entities.DemandStatusPending || d.Requests != 1 {
					t.Fatalf("unexpected demand: %+v", d)
				}
				if d.Location.Lat != 4.85 || d.Location.Lng != 31.60 {
					t.Fatalf("unexpected location: %+v", d.Location)
				}
				if d.CreatedAt.IsZero() || d.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return d, nil
			},
		)

		res, err := uc.RequestWater(context.Background(), RequestWaterInput{
			UserID:   "user-1",
			Location: geo.Coordinate{Lat: 4.85, Lng: 31.60},
			HasCoord: true,
			Area:     "Gudele Block 7",
			Urgency:  entities.UrgencyHigh,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Urgency != entities.UrgencyHigh {
			t.Fatalf("unexpected urgency: %s", res.Urgency)
		}
	})

	t.Run("missing coordinate falls back to city center", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.DemandPoint) (entities.DemandPoint, error) {
				if d.Location != geo.JubaCenter {
					t.Fatalf("expected city center fallback, got %+v", d.Location)
				}
				return d, nil
			},
		)

		_, err := uc.RequestWater(context.Background(), RequestWaterInput{Urgency: entities.UrgencyLow})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("schedules simulated dispatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		scheduler := mock_interfaces.NewMockIDispatchScheduler(ctrl)
		uc := NewDemandUseCase(repo, nil)
		uc.SetScheduler(scheduler)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.DemandPoint) (entities.DemandPoint, error) { return d, nil },
		)
		scheduler.EXPECT().Schedule(gomock.Any())

		_, err := uc.RequestWater(context.Background(), RequestWaterInput{Urgency: entities.UrgencyMedium})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.DemandPoint{}, errors.New("db"))

		_, err := uc.RequestWater(context.Background(), RequestWaterInput{Urgency: entities.UrgencyLow})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDemandUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidDemandID) {
			t.Fatalf("expected ErrInvalidDemandID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.DemandPoint{}, nil)

		_, err := uc.GetByID(context.Background(), "d-1")
		if !errors.Is(err, ErrDemandNotFound) {
			t.Fatalf("expected ErrDemandNotFound, got %v", err)
		}
	})
}

func TestDemandUseCase_List(t *testing.T) {
	t.Run("invalid urgency filter", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil)
		_, err := uc.List(context.Background(), "critical", "")
		if !errors.Is(err, ErrInvalidUrgency) {
			t.Fatalf("expected ErrInvalidUrgency, got %v", err)
		}
	})

	t.Run("filters by urgency and status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return([]entities.DemandPoint{
			{ID: "d-1", Urgency: entities.UrgencyHigh, Status: entities.DemandStatusPending},
			{ID: "d-2", Urgency: entities.UrgencyLow, Status: entities.DemandStatusPending},
			{ID: "d-3", Urgency: entities.UrgencyHigh, Status: entities.DemandStatusSupplied},
		}, nil)

		got, err := uc.List(context.Background(), "high", "pending")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "d-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestDemandUseCase_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDemandRepository(ctrl)
	uc := NewDemandUseCase(repo, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.DemandPoint{
		{Status: entities.DemandStatusPending},
		{Status: entities.DemandStatusPending},
		{Status: entities.DemandStatusOnTheWay},
		{Status: entities.DemandStatusSupplied},
	}, nil)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Pending != 2 || stats.OnTheWay != 1 || stats.Supplied != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestDemandUseCase_MarkOnTheWay(t *testing.T) {
	supplier := EnRouteSupplier{ID: "sup-1", Name: "Juba Water Co", VehiclePlate: "SSD 123"}

	t.Run("invalid supplier", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil)
		_, err := uc.MarkOnTheWay(context.Background(), "d-1", EnRouteSupplier{})
		if !errors.Is(err, ErrInvalidSupplier) {
			t.Fatalf("expected ErrInvalidSupplier, got %v", err)
		}
	})

	t.Run("rejects transition from supplied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.DemandPoint{ID: "d-1", Status: entities.DemandStatusSupplied}, nil)

		_, err := uc.MarkOnTheWay(context.Background(), "d-1", supplier)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("publishes supplier start position north of household", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		positions := mock_interfaces.NewMockILivePositionRepository(ctrl)
		uc := NewDemandUseCase(repo, positions)

		household := geo.Coordinate{Lat: 4.85, Lng: 31.60}
		pending := entities.DemandPoint{ID: "d-1", Location: household, Status: entities.DemandStatusPending}
		onWay := pending
		onWay.Status = entities.DemandStatusOnTheWay

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(pending, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "d-1", entities.DemandStatusOnTheWay).Return(onWay, nil)
		repo.EXPECT().AssignSupplier(gomock.Any(), "d-1", "sup-1").DoAndReturn(
			func(_ context.Context, id, supplierID string) (entities.DemandPoint, error) {
				d := onWay
				d.SupplierID = supplierID
				return d, nil
			},
		)
		positions.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.LivePosition) (entities.LivePosition, error) {
				if p.SupplierID != "sup-1" || p.VehiclePlate != "SSD 123" {
					t.Fatalf("unexpected position: %+v", p)
				}
				if p.Location.Lat != 4.868 || p.Location.Lng != 31.60 {
					t.Fatalf("expected start 0.018 north of household, got %+v", p.Location)
				}
				return p, nil
			},
		)

		res, err := uc.MarkOnTheWay(context.Background(), "d-1", supplier)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.DemandStatusOnTheWay || res.SupplierID != "sup-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestDemandUseCase_MarkSupplied(t *testing.T) {
	t.Run("clears the supplier live position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		positions := mock_interfaces.NewMockILivePositionRepository(ctrl)
		uc := NewDemandUseCase(repo, positions)

		onWay := entities.DemandPoint{ID: "d-1", Status: entities.DemandStatusOnTheWay, SupplierID: "sup-1"}
		supplied := onWay
		supplied.Status = entities.DemandStatusSupplied

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(onWay, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "d-1", entities.DemandStatusSupplied).Return(supplied, nil)
		positions.EXPECT().Delete(gomock.Any(), "sup-1").Return(nil)

		res, err := uc.MarkSupplied(context.Background(), "d-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.DemandStatusSupplied {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("rejects transition from pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.DemandPoint{ID: "d-1", Status: entities.DemandStatusPending}, nil)

		_, err := uc.MarkSupplied(context.Background(), "d-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewDemandUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.DemandPoint{}, nil)

		_, err := uc.MarkSupplied(context.Background(), "ghost")
		if !errors.Is(err, ErrDemandNotFound) {
			t.Fatalf("expected ErrDemandNotFound, got %v", err)
		}
	})
}

func TestDemandUseCase_Tracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDemandRepository(ctrl)
	positions := mock_interfaces.NewMockILivePositionRepository(ctrl)
	uc := NewDemandUseCase(repo, positions)

	onWay := entities.DemandPoint{ID: "d-1", Status: entities.DemandStatusOnTheWay, SupplierID: "sup-1"}
	pos := entities.LivePosition{SupplierID: "sup-1", Location: geo.Coordinate{Lat: 4.86, Lng: 31.60}}

	repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(onWay, nil)
	positions.EXPECT().GetBySupplierID(gomock.Any(), "sup-1").Return(pos, nil)

	tracking, err := uc.Tracking(context.Background(), "d-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tracking.Supplier == nil || tracking.Supplier.SupplierID != "sup-1" {
		t.Fatalf("expected supplier position, got %+v", tracking.Supplier)
	}
}
