package response

import (
	"time"

	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/usecase"
)

type DemandResponse struct {
	ID         string    `json:"id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Area       string    `json:"area"`
	Requests   int       `json:"requests"`
	Urgency    string    `json:"urgency"`
	Distance   string    `json:"distance"`
	Status     string    `json:"status"`
	Liters     int       `json:"liters,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	SupplierID string    `json:"supplier_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromDemand(d entities.DemandPoint) DemandResponse {
	return DemandResponse{
		ID:         d.ID,
		Lat:        d.Location.Lat,
		Lng:        d.Location.Lng,
		Area:       d.Area,
		Requests:   d.Requests,
		Urgency:    string(d.Urgency),
		Distance:   d.Distance,
		Status:     string(d.Status),
		Liters:     d.Liters,
		Phone:      d.Phone,
		SupplierID: d.SupplierID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func FromDemands(points []entities.DemandPoint) []DemandResponse {
	out := make([]DemandResponse, 0, len(points))
	for _, d := range points {
		out = append(out, FromDemand(d))
	}
	return out
}

type DemandStatsResponse struct {
	Pending  int `json:"pending"`
	OnTheWay int `json:"on_the_way"`
	Supplied int `json:"supplied"`
}

func FromStats(s usecase.DemandStats) DemandStatsResponse {
	return DemandStatsResponse{Pending: s.Pending, OnTheWay: s.OnTheWay, Supplied: s.Supplied}
}

// DemandTrackingResponse is the household view of an active request: the
// point plus the en-route supplier, when one is sharing a position.
type DemandTrackingResponse struct {
	Demand   DemandResponse        `json:"demand"`
	Supplier *LivePositionResponse `json:"supplier,omitempty"`
}

func FromTracking(t usecase.DemandTracking) DemandTrackingResponse {
	res := DemandTrackingResponse{Demand: FromDemand(t.Demand)}
	if t.Supplier != nil {
		pos := FromLivePosition(*t.Supplier)
		res.Supplier = &pos
	}
	return res
}
