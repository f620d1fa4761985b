package response

import (
	"time"

	"moyo_dispatch/internal/domain/entities"
)

type SupplierApplicationResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	NationalID   string    `json:"national_id"`
	VehiclePlate string    `json:"vehicle_plate"`
	Email        string    `json:"email,omitempty"`
	TankerPhoto  string    `json:"tanker_photo,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromApplication(a entities.SupplierApplication) SupplierApplicationResponse {
	return SupplierApplicationResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		Name:         a.Name,
		NationalID:   a.NationalID,
		VehiclePlate: a.VehiclePlate,
		Email:        a.Email,
		TankerPhoto:  a.TankerPhoto,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func FromApplications(apps []entities.SupplierApplication) []SupplierApplicationResponse {
	out := make([]SupplierApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, FromApplication(a))
	}
	return out
}
