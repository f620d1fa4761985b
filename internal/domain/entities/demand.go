package entities

import (
	"time"

	"moyo_dispatch/internal/domain/geo"
)

// DemandStatus represents the lifecycle of a water demand point.
//
// Domain notes:
//   - The dispatch-service is the source of truth for demand state.
//   - The sequence is strictly forward: pending -> on_the_way -> supplied.
//     Backward or skipping transitions are rejected (see CanTransition).

type DemandStatus string

const (
	DemandStatusPending  DemandStatus = "pending"
	DemandStatusOnTheWay DemandStatus = "on_the_way"
	DemandStatusSupplied DemandStatus = "supplied"
)

// demandTransitions is the closed transition table. Supplied is terminal.
var demandTransitions = map[DemandStatus][]DemandStatus{
	DemandStatusPending:  {DemandStatusOnTheWay},
	DemandStatusOnTheWay: {DemandStatusSupplied},
	DemandStatusSupplied: {},
}

// CanTransition reports whether moving from current to next is allowed.
func (s DemandStatus) CanTransition(next DemandStatus) bool {
	for _, allowed := range demandTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s DemandStatus) Valid() bool {
	_, ok := demandTransitions[s]
	return ok
}

// Urgency is a three-level priority tag on a request. It drives display
// styling on the clients, not dispatch ordering.

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// DemandPoint is a household's outstanding or resolved water request.
//
// Storage model:
//   - Kept in the in-memory repository for the lifetime of the process;
//     demand is ephemeral by design and never deleted, only resolved.
//   - SupplierID is set while exactly one supplier is en route and cleared
//     semantics-wise by the supplied transition (the field keeps the last
//     fulfilling supplier for display).

type DemandPoint struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Location  geo.Coordinate `json:"location"`
	Area      string         `json:"area"`
	Requests  int            `json:"requests"`
	Urgency   Urgency        `json:"urgency"`
	Distance  string         `json:"distance"`
	Status    DemandStatus   `json:"status"`
	Liters    int            `json:"liters,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	SupplierID string        `json:"supplier_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
