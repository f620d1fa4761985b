package interfaces

import "moyo_dispatch/internal/domain/entities"

// IDispatchScheduler abstracts the simulated dispatch timers.
//
// There is no real dispatch backend: acceptance and fulfillment either come
// from explicit supplier action or from scheduled simulation. Every piece of
// scheduled work is tied to a demand id so it can be cancelled when the real
// action arrives first or the point is resolved.

type IDispatchScheduler interface {
	// Schedule arms the simulated acceptance/fulfillment timers for a newly
	// created demand point.
	Schedule(demandID string)
	// CancelStage drops the pending timer that would have produced the given
	// status, keeping later stages armed.
	CancelStage(demandID string, stage entities.DemandStatus)
	// StartMovement begins interpolating the supplier's live position toward
	// the household.
	StartMovement(demandID, supplierID string)
	// Cancel drops all scheduled work for the demand point.
	Cancel(demandID string)
}
