package repository

import (
	"context"
	"sync"
	"time"

	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/usecase/interfaces"
)

// DemandMemoryRepository keeps demand points in memory for the lifetime of
// the process. Demand is session state: it is created, advanced through its
// status sequence, and never deleted.
//
// Points are held newest-first, matching how the dashboards render them.

type DemandMemoryRepository struct {
	mu     sync.RWMutex
	points []entities.DemandPoint
	byID   map[string]int
}

var _ interfaces.IDemandRepository = (*DemandMemoryRepository)(nil)

func NewDemandMemoryRepository() *DemandMemoryRepository {
	return &DemandMemoryRepository{byID: make(map[string]int)}
}

func (r *DemandMemoryRepository) Create(_ context.Context, d entities.DemandPoint) (entities.DemandPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.points = append([]entities.DemandPoint{d}, r.points...)
	r.reindex()
	return d, nil
}

func (r *DemandMemoryRepository) GetByID(_ context.Context, id string) (entities.DemandPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, ok := r.byID[id]; ok {
		return r.points[i], nil
	}
	return entities.DemandPoint{}, nil
}

func (r *DemandMemoryRepository) List(_ context.Context) ([]entities.DemandPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.DemandPoint, len(r.points))
	copy(out, r.points)
	return out, nil
}

func (r *DemandMemoryRepository) UpdateStatus(_ context.Context, id string, status entities.DemandStatus) (entities.DemandPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[id]
	if !ok {
		return entities.DemandPoint{}, nil
	}
	r.points[i].Status = status
	r.points[i].UpdatedAt = time.Now().UTC()
	return r.points[i], nil
}

func (r *DemandMemoryRepository) AssignSupplier(_ context.Context, id string, supplierID string) (entities.DemandPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[id]
	if !ok {
		return entities.DemandPoint{}, nil
	}
	r.points[i].SupplierID = supplierID
	r.points[i].UpdatedAt = time.Now().UTC()
	return r.points[i], nil
}

// reindex rebuilds the id index; callers must hold the write lock.
func (r *DemandMemoryRepository) reindex() {
	for i, p := range r.points {
		r.byID[p.ID] = i
	}
}
