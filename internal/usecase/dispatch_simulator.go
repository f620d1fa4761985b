package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/domain/geo"
	"moyo_dispatch/internal/usecase/interfaces"
)

// DispatchConfig tunes the simulated dispatch. Delays are measured from
// request submission, matching the original client behavior (5s to
// acceptance, 12s to fulfillment).
type DispatchConfig struct {
	OnTheWayDelay time.Duration
	SuppliedDelay time.Duration
	MoveInterval  time.Duration
	MoveFraction  float64
	SnapKM        float64
}

func DefaultDispatchConfig() DispatchConfig {
	return DispatchConfig{
		OnTheWayDelay: 5 * time.Second,
		SuppliedDelay: 12 * time.Second,
		MoveInterval:  2 * time.Second,
		MoveFraction:  0.2,
		SnapKM:        0.05,
	}
}

// DispatchConfigFromEnv reads the delays from the environment, keeping the
// defaults for anything unset or unparsable.
func DispatchConfigFromEnv() DispatchConfig {
	cfg := DefaultDispatchConfig()
	cfg.OnTheWayDelay = durationFromEnv("DISPATCH_ON_THE_WAY_DELAY", cfg.OnTheWayDelay)
	cfg.SuppliedDelay = durationFromEnv("DISPATCH_SUPPLIED_DELAY", cfg.SuppliedDelay)
	cfg.MoveInterval = durationFromEnv("DISPATCH_MOVE_INTERVAL", cfg.MoveInterval)
	return cfg
}

func durationFromEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[dispatch][config] ignoring %s=%q: %v", key, v, err)
		return def
	}
	return d
}

// DispatchSimulator stands in for a real dispatch backend. For every new
// demand point it arms two timers (acceptance and fulfillment) and, once a
// supplier is en route, interpolates that supplier's live position toward
// the household.
//
// All scheduled work is keyed by demand id and cancellable: an explicit
// supplier action cancels the timer for the stage it performed, and
// resolving the point cancels everything. Shutdown cancels every pending
// piece of work, so no timer outlives the simulator.
type DispatchSimulator struct {
	demands   IDemandUseCase
	positions interfaces.ILivePositionRepository
	cfg       DispatchConfig

	mu     sync.Mutex
	timers map[string]map[entities.DemandStatus]*time.Timer
	movers map[string]context.CancelFunc
}

var _ interfaces.IDispatchScheduler = (*DispatchSimulator)(nil)

func NewDispatchSimulator(demands IDemandUseCase, positions interfaces.ILivePositionRepository, cfg DispatchConfig) *DispatchSimulator {
	return &DispatchSimulator{
		demands:   demands,
		positions: positions,
		cfg:       cfg,
		timers:    make(map[string]map[entities.DemandStatus]*time.Timer),
		movers:    make(map[string]context.CancelFunc),
	}
}

func (s *DispatchSimulator) Schedule(demandID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stages := map[entities.DemandStatus]*time.Timer{
		entities.DemandStatusOnTheWay: time.AfterFunc(s.cfg.OnTheWayDelay, func() {
			s.fireOnTheWay(demandID)
		}),
		entities.DemandStatusSupplied: time.AfterFunc(s.cfg.SuppliedDelay, func() {
			s.fireSupplied(demandID)
		}),
	}
	s.timers[demandID] = stages
	log.Printf("[dispatch][sim] scheduled demand id=%s accept_in=%s supply_in=%s", demandID, s.cfg.OnTheWayDelay, s.cfg.SuppliedDelay)
}

func (s *DispatchSimulator) CancelStage(demandID string, stage entities.DemandStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stages, ok := s.timers[demandID]; ok {
		if timer, ok := stages[stage]; ok {
			timer.Stop()
			delete(stages, stage)
		}
	}
}

func (s *DispatchSimulator) Cancel(demandID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(demandID)
}

func (s *DispatchSimulator) cancelLocked(demandID string) {
	if stages, ok := s.timers[demandID]; ok {
		for _, timer := range stages {
			timer.Stop()
		}
		delete(s.timers, demandID)
	}
	if stop, ok := s.movers[demandID]; ok {
		stop()
		delete(s.movers, demandID)
	}
}

// Shutdown cancels all pending timers and movement loops.
func (s *DispatchSimulator) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.timers {
		s.cancelLocked(id)
	}
	for id := range s.movers {
		s.cancelLocked(id)
	}
}

func (s *DispatchSimulator) StartMovement(demandID, supplierID string) {
	s.mu.Lock()
	if stop, ok := s.movers[demandID]; ok {
		stop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.movers[demandID] = cancel
	s.mu.Unlock()

	go s.moveLoop(ctx, demandID, supplierID)
}

// fireOnTheWay is the simulated acceptance: a synthetic supplier takes the
// request. A real acceptance that happened first makes the transition
// invalid, which is expected and only logged.
func (s *DispatchSimulator) fireOnTheWay(demandID string) {
	_, err := s.demands.MarkOnTheWay(context.Background(), demandID, EnRouteSupplier{
		ID:           "sim-" + demandID,
		Name:         "Moyo Dispatch Tanker",
		VehiclePlate: "SSD 001",
	})
	if err != nil && !errors.Is(err, ErrInvalidTransition) && !errors.Is(err, ErrDemandNotFound) {
		log.Printf("[dispatch][sim] simulated acceptance failed id=%s err=%v", demandID, err)
	}
}

func (s *DispatchSimulator) fireSupplied(demandID string) {
	_, err := s.demands.MarkSupplied(context.Background(), demandID)
	if err != nil && !errors.Is(err, ErrInvalidTransition) && !errors.Is(err, ErrDemandNotFound) {
		log.Printf("[dispatch][sim] simulated fulfillment failed id=%s err=%v", demandID, err)
	}
}

// moveLoop advances the supplier's live position a fixed fraction of the
// remaining distance each tick, snapping onto the household once close
// enough. It exits when the point stops being en route.
func (s *DispatchSimulator) moveLoop(ctx context.Context, demandID, supplierID string) {
	ticker := time.NewTicker(s.cfg.MoveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d, err := s.demands.GetByID(ctx, demandID)
			if err != nil || d.Status != entities.DemandStatusOnTheWay {
				return
			}
			pos, err := s.positions.GetBySupplierID(ctx, supplierID)
			if err != nil || pos.SupplierID == "" {
				return
			}

			next := geo.StepToward(pos.Location, d.Location, s.cfg.MoveFraction, s.cfg.SnapKM)
			pos.Location = next
			pos.UpdatedAt = time.Now().UTC()
			if _, err := s.positions.Upsert(ctx, pos); err != nil {
				log.Printf("[dispatch][sim] movement update failed id=%s err=%v", demandID, err)
				return
			}
			if next == d.Location {
				// Arrived; hold position until the supplied transition
				// clears it.
				return
			}
		}
	}
}
