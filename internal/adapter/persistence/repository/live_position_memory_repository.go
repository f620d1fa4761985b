package repository

import (
	"context"
	"sync"

	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/usecase/interfaces"
)

// LivePositionMemoryRepository keeps supplier live positions in memory.
// Upsert replaces any prior entry for the same supplier, so the map holds
// exactly one position per supplier id.

type LivePositionMemoryRepository struct {
	mu        sync.RWMutex
	positions map[string]entities.LivePosition
}

var _ interfaces.ILivePositionRepository = (*LivePositionMemoryRepository)(nil)

func NewLivePositionMemoryRepository() *LivePositionMemoryRepository {
	return &LivePositionMemoryRepository{positions: make(map[string]entities.LivePosition)}
}

func (r *LivePositionMemoryRepository) Upsert(_ context.Context, p entities.LivePosition) (entities.LivePosition, error) {
	r.mu.Lock()
	r.positions[p.SupplierID] = p
	r.mu.Unlock()
	return p, nil
}

func (r *LivePositionMemoryRepository) GetBySupplierID(_ context.Context, supplierID string) (entities.LivePosition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.positions[supplierID], nil
}

func (r *LivePositionMemoryRepository) Delete(_ context.Context, supplierID string) error {
	r.mu.Lock()
	delete(r.positions, supplierID)
	r.mu.Unlock()
	return nil
}

func (r *LivePositionMemoryRepository) List(_ context.Context) ([]entities.LivePosition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.LivePosition, 0, len(r.positions))
	for _, p := range r.positions {
		out = append(out, p)
	}
	return out, nil
}
