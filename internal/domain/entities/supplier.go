package entities

import (
	"time"

	"moyo_dispatch/internal/domain/geo"
)

// ApplicationStatus represents the admin review outcome for a supplier
// application. Approved suppliers may accept demands and share a live
// position; suspended suppliers may not.

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusSuspended ApplicationStatus = "suspended"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusSuspended:
		return true
	}
	return false
}

// SupplierApplication is a tanker operator's registration record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - UserID is unique per application; the use case enforces one
//     application per user before creating.
//
// TankerPhoto holds the evidence image as a data URI (photo of the tanker
// with the number plate visible).

type SupplierApplication struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	Name         string            `json:"name"`
	NationalID   string            `json:"national_id"`
	VehiclePlate string            `json:"vehicle_plate"`
	Email        string            `json:"email"`
	TankerPhoto  string            `json:"tanker_photo"`
	Status       ApplicationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// LivePosition is a supplier's currently displayed map coordinate. At most
// one entry exists per supplier (upsert-by-replacement keyed on SupplierID).
type LivePosition struct {
	SupplierID   string         `json:"supplier_id"`
	Name         string         `json:"name"`
	VehiclePlate string         `json:"vehicle_plate"`
	Location     geo.Coordinate `json:"location"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
