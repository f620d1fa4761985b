package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/domain/geo"
	"moyo_dispatch/internal/usecase/interfaces"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidSupplierID = errors.New("invalid supplier id")
)

// driftJitterDeg bounds the random per-tick perturbation applied to seed
// positions (roughly 150 m).
const driftJitterDeg = 0.0015

const defaultSeedDriftInterval = 8 * time.Second

// SeedDriftIntervalFromEnv reads SEED_DRIFT_INTERVAL, keeping the default
// when unset or unparsable.
func SeedDriftIntervalFromEnv() time.Duration {
	return durationFromEnv("SEED_DRIFT_INTERVAL", defaultSeedDriftInterval)
}

// MapView is the marker set and fitted viewport for a map render.
type MapView struct {
	Demands   []entities.DemandPoint  `json:"demands"`
	Suppliers []entities.LivePosition `json:"suppliers"`
	Household *geo.Coordinate         `json:"household,omitempty"`
	Bounds    geo.Bounds              `json:"bounds"`
}

// ITrackingUseCase exposes supplier live positions and derived map views.
//
// The public feed falls back to drifting seed positions when no approved
// supplier is actually sharing a location. The drift is a display effect
// only; nothing downstream may treat it as telemetry.
type ITrackingUseCase interface {
	SetLivePosition(ctx context.Context, supplier entities.SupplierApplication, loc geo.Coordinate) (entities.LivePosition, error)
	ClearLivePosition(ctx context.Context, supplierID string) error
	LiveSuppliersForMap(ctx context.Context) ([]entities.LivePosition, error)
	MapView(ctx context.Context, household *geo.Coordinate) (MapView, error)
}

type TrackingUseCase struct {
	positions interfaces.ILivePositionRepository
	demands   interfaces.IDemandRepository

	mu    sync.Mutex
	seeds []entities.LivePosition
	stop  context.CancelFunc
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(positions interfaces.ILivePositionRepository, demands interfaces.IDemandRepository) *TrackingUseCase {
	return &TrackingUseCase{
		positions: positions,
		demands:   demands,
		seeds:     defaultSeedPositions(),
	}
}

// defaultSeedPositions are the trust-building tanker pins shown on the
// public map before any real supplier goes live.
func defaultSeedPositions() []entities.LivePosition {
	now := time.Now().UTC()
	return []entities.LivePosition{
		{SupplierID: "seed-1", Name: "Gudele Tanker", VehiclePlate: "SSD 104", Location: geo.Coordinate{Lat: 4.848, Lng: 31.598}, UpdatedAt: now},
		{SupplierID: "seed-2", Name: "Munuki Tanker", VehiclePlate: "SSD 217", Location: geo.Coordinate{Lat: 4.862, Lng: 31.592}, UpdatedAt: now},
		{SupplierID: "seed-3", Name: "Kator Tanker", VehiclePlate: "SSD 390", Location: geo.Coordinate{Lat: 4.855, Lng: 31.618}, UpdatedAt: now},
	}
}

func (u *TrackingUseCase) SetLivePosition(ctx context.Context, supplier entities.SupplierApplication, loc geo.Coordinate) (entities.LivePosition, error) {
	if strings.TrimSpace(supplier.ID) == "" {
		return entities.LivePosition{}, ErrInvalidSupplierID
	}
	if !loc.Valid() {
		return entities.LivePosition{}, ErrInvalidCoordinate
	}

	pos := entities.LivePosition{
		SupplierID:   supplier.ID,
		Name:         supplier.Name,
		VehiclePlate: supplier.VehiclePlate,
		Location:     geo.CityBounds.Clamp(loc),
		UpdatedAt:    time.Now().UTC(),
	}
	return u.positions.Upsert(ctx, pos)
}

func (u *TrackingUseCase) ClearLivePosition(ctx context.Context, supplierID string) error {
	supplierID = strings.TrimSpace(supplierID)
	if supplierID == "" {
		return ErrInvalidSupplierID
	}
	return u.positions.Delete(ctx, supplierID)
}

func (u *TrackingUseCase) LiveSuppliersForMap(ctx context.Context) ([]entities.LivePosition, error) {
	genuine, err := u.positions.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(genuine) > 0 {
		return genuine, nil
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]entities.LivePosition, len(u.seeds))
	copy(out, u.seeds)
	return out, nil
}

func (u *TrackingUseCase) MapView(ctx context.Context, household *geo.Coordinate) (MapView, error) {
	demands, err := u.demands.List(ctx)
	if err != nil {
		return MapView{}, err
	}
	suppliers, err := u.LiveSuppliersForMap(ctx)
	if err != nil {
		return MapView{}, err
	}

	points := make([]geo.Coordinate, 0, len(demands)+len(suppliers)+1)
	for _, d := range demands {
		points = append(points, d.Location)
	}
	for _, s := range suppliers {
		points = append(points, s.Location)
	}

	view := MapView{Demands: demands, Suppliers: suppliers}
	if household != nil {
		if !household.Valid() {
			return MapView{}, ErrInvalidCoordinate
		}
		h := geo.CityBounds.Clamp(*household)
		view.Household = &h
		points = append(points, h)
	}
	view.Bounds = geo.FitBounds(points, 0.01)
	return view, nil
}

// StartDrift begins perturbing the seed positions on the given interval so
// the public map does not look frozen. It is idempotent per use case
// instance; StopDrift cancels the loop.
func (u *TrackingUseCase) StartDrift(interval time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.stop != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	u.stop = cancel

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				u.driftTick()
			}
		}
	}()
	log.Printf("[tracking][usecase] seed drift started interval=%s", interval)
}

func (u *TrackingUseCase) StopDrift() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.stop != nil {
		u.stop()
		u.stop = nil
	}
}

func (u *TrackingUseCase) driftTick() {
	u.mu.Lock()
	defer u.mu.Unlock()
	now := time.Now().UTC()
	for i := range u.seeds {
		jittered := geo.Coordinate{
			Lat: u.seeds[i].Location.Lat + (rand.Float64()*2-1)*driftJitterDeg,
			Lng: u.seeds[i].Location.Lng + (rand.Float64()*2-1)*driftJitterDeg,
		}
		u.seeds[i].Location = geo.CityBounds.Clamp(jittered)
		u.seeds[i].UpdatedAt = now
	}
}
