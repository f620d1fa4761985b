package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/domain/geo"
	"moyo_dispatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDemandNotFound      = errors.New("demand point not found")
	ErrInvalidDemandID     = errors.New("invalid demand id")
	ErrInvalidUrgency      = errors.New("invalid urgency")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidSupplier     = errors.New("invalid supplier")
)

// supplierStartOffsetLat places the en-route supplier a fixed offset north
// of the household when dispatch begins.
const supplierStartOffsetLat = 0.018

// RequestWaterInput carries a household's request. An invalid or missing
// device coordinate falls back to the city center.
type RequestWaterInput struct {
	UserID   string
	Location geo.Coordinate
	HasCoord bool
	Area     string
	Urgency  entities.Urgency
	Liters   int
	Phone    string
}

// EnRouteSupplier identifies the supplier heading to a demand point.
type EnRouteSupplier struct {
	ID           string
	Name         string
	VehiclePlate string
}

// DemandStats are the dashboard counters per status.
type DemandStats struct {
	Pending  int `json:"pending"`
	OnTheWay int `json:"on_the_way"`
	Supplied int `json:"supplied"`
}

// DemandTracking is the household-facing view of an active request: the
// point itself plus the en-route supplier's current position, when any.
type DemandTracking struct {
	Demand   entities.DemandPoint   `json:"demand"`
	Supplier *entities.LivePosition `json:"supplier,omitempty"`
}

// IDemandUseCase exposes the demand point lifecycle.
//
// Status flow (strictly forward):
//   - RequestWater() creates a pending point and schedules simulated dispatch
//   - MarkOnTheWay() moves pending -> on_the_way and publishes the supplier's
//     starting position north of the household
//   - MarkSupplied() moves on_the_way -> supplied and clears the position
type IDemandUseCase interface {
	RequestWater(ctx context.Context, in RequestWaterInput) (entities.DemandPoint, error)
	GetByID(ctx context.Context, id string) (entities.DemandPoint, error)
	List(ctx context.Context, urgency, status string) ([]entities.DemandPoint, error)
	Stats(ctx context.Context) (DemandStats, error)
	MarkOnTheWay(ctx context.Context, id string, supplier EnRouteSupplier) (entities.DemandPoint, error)
	MarkSupplied(ctx context.Context, id string) (entities.DemandPoint, error)
	Tracking(ctx context.Context, id string) (DemandTracking, error)
}

type DemandUseCase struct {
	repo      interfaces.IDemandRepository
	positions interfaces.ILivePositionRepository
	scheduler interfaces.IDispatchScheduler
}

var _ IDemandUseCase = (*DemandUseCase)(nil)

func NewDemandUseCase(repo interfaces.IDemandRepository, positions interfaces.ILivePositionRepository) *DemandUseCase {
	return &DemandUseCase{repo: repo, positions: positions}
}

// SetScheduler wires the dispatch simulator after construction. The
// simulator needs the use case to drive transitions, so the dependency is
// closed here rather than in the constructor.
func (u *DemandUseCase) SetScheduler(s interfaces.IDispatchScheduler) {
	u.scheduler = s
}

func (u *DemandUseCase) RequestWater(ctx context.Context, in RequestWaterInput) (entities.DemandPoint, error) {
	if !in.Urgency.Valid() {
		return entities.DemandPoint{}, ErrInvalidUrgency
	}

	loc := in.Location
	if !in.HasCoord || !loc.Valid() {
		log.Printf("[demand][usecase] no usable coordinate user_id=%s, falling back to city center", in.UserID)
		loc = geo.JubaCenter
	}

	area := strings.TrimSpace(in.Area)
	if area == "" {
		area = "Unknown area"
	}

	now := time.Now().UTC()
	d := entities.DemandPoint{
		ID:        uuid.NewString(),
		UserID:    strings.TrimSpace(in.UserID),
		Location:  loc,
		Area:      area,
		Requests:  1,
		Urgency:   in.Urgency,
		Distance:  geo.FormatDistance(geo.Distance(loc, geo.JubaCenter)),
		Status:    entities.DemandStatusPending,
		Liters:    in.Liters,
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.DemandPoint{}, err
	}
	log.Printf("[demand][usecase] created demand id=%s area=%q urgency=%s", created.ID, created.Area, created.Urgency)

	if u.scheduler != nil {
		u.scheduler.Schedule(created.ID)
	}
	return created, nil
}

func (u *DemandUseCase) GetByID(ctx context.Context, id string) (entities.DemandPoint, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DemandPoint{}, ErrInvalidDemandID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DemandPoint{}, err
	}
	if d.ID == "" {
		return entities.DemandPoint{}, ErrDemandNotFound
	}
	return d, nil
}

func (u *DemandUseCase) List(ctx context.Context, urgency, status string) ([]entities.DemandPoint, error) {
	urgency = strings.TrimSpace(urgency)
	if urgency != "" && !entities.Urgency(urgency).Valid() {
		return nil, ErrInvalidUrgency
	}
	status = strings.TrimSpace(status)
	if status != "" && !entities.DemandStatus(status).Valid() {
		return nil, ErrInvalidStatusFilter
	}

	points, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if urgency == "" && status == "" {
		return points, nil
	}

	filtered := make([]entities.DemandPoint, 0, len(points))
	for _, p := range points {
		if urgency != "" && p.Urgency != entities.Urgency(urgency) {
			continue
		}
		if status != "" && p.Status != entities.DemandStatus(status) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (u *DemandUseCase) Stats(ctx context.Context) (DemandStats, error) {
	points, err := u.repo.List(ctx)
	if err != nil {
		return DemandStats{}, err
	}

	var stats DemandStats
	for _, p := range points {
		switch p.Status {
		case entities.DemandStatusPending:
			stats.Pending++
		case entities.DemandStatusOnTheWay:
			stats.OnTheWay++
		case entities.DemandStatusSupplied:
			stats.Supplied++
		}
	}
	return stats, nil
}

func (u *DemandUseCase) MarkOnTheWay(ctx context.Context, id string, supplier EnRouteSupplier) (entities.DemandPoint, error) {
	supplier.ID = strings.TrimSpace(supplier.ID)
	if supplier.ID == "" {
		return entities.DemandPoint{}, ErrInvalidSupplier
	}

	d, err := u.transition(ctx, id, entities.DemandStatusOnTheWay)
	if err != nil {
		return entities.DemandPoint{}, err
	}

	if u.scheduler != nil {
		u.scheduler.CancelStage(d.ID, entities.DemandStatusOnTheWay)
	}

	d, err = u.repo.AssignSupplier(ctx, d.ID, supplier.ID)
	if err != nil {
		return entities.DemandPoint{}, err
	}

	// The supplier starts a fixed offset north of the household and closes
	// in from there (movement is interpolated by the simulator).
	start := geo.Coordinate{Lat: d.Location.Lat + supplierStartOffsetLat, Lng: d.Location.Lng}
	_, err = u.positions.Upsert(ctx, entities.LivePosition{
		SupplierID:   supplier.ID,
		Name:         supplier.Name,
		VehiclePlate: supplier.VehiclePlate,
		Location:     start,
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return entities.DemandPoint{}, err
	}
	log.Printf("[demand][usecase] demand id=%s on_the_way supplier=%s start=(%.4f,%.4f)", d.ID, supplier.ID, start.Lat, start.Lng)

	if u.scheduler != nil {
		u.scheduler.StartMovement(d.ID, supplier.ID)
	}
	return d, nil
}

func (u *DemandUseCase) MarkSupplied(ctx context.Context, id string) (entities.DemandPoint, error) {
	d, err := u.transition(ctx, id, entities.DemandStatusSupplied)
	if err != nil {
		return entities.DemandPoint{}, err
	}

	if u.scheduler != nil {
		u.scheduler.Cancel(d.ID)
	}

	if d.SupplierID != "" {
		if err := u.positions.Delete(ctx, d.SupplierID); err != nil {
			return entities.DemandPoint{}, err
		}
	}
	log.Printf("[demand][usecase] demand id=%s supplied", d.ID)
	return d, nil
}

func (u *DemandUseCase) Tracking(ctx context.Context, id string) (DemandTracking, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return DemandTracking{}, err
	}

	tracking := DemandTracking{Demand: d}
	if d.Status == entities.DemandStatusOnTheWay && d.SupplierID != "" {
		pos, err := u.positions.GetBySupplierID(ctx, d.SupplierID)
		if err != nil {
			return DemandTracking{}, err
		}
		if pos.SupplierID != "" {
			tracking.Supplier = &pos
		}
	}
	return tracking, nil
}

// transition advances a point after checking the transition table. It
// rejects backward or skipping moves explicitly instead of overwriting.
func (u *DemandUseCase) transition(ctx context.Context, id string, next entities.DemandStatus) (entities.DemandPoint, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DemandPoint{}, ErrInvalidDemandID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DemandPoint{}, err
	}
	if current.ID == "" {
		return entities.DemandPoint{}, ErrDemandNotFound
	}
	if !current.Status.CanTransition(next) {
		log.Printf("[demand][usecase] rejected transition id=%s %s -> %s", id, current.Status, next)
		return entities.DemandPoint{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return entities.DemandPoint{}, err
	}
	if updated.ID == "" {
		return entities.DemandPoint{}, ErrDemandNotFound
	}
	return updated, nil
}
