package request

import (
	"strings"

	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/domain/geo"
)

// WaterRequest is the household-facing payload for requesting a delivery.
// The coordinate is optional; a missing or unusable one falls back to the
// city center downstream.
type WaterRequest struct {
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Area    string   `json:"area"`
	Urgency string   `json:"urgency" binding:"required"`
	Liters  int      `json:"liters"`
	Phone   string   `json:"phone"`
}

func (r WaterRequest) ResolveLocation() (geo.Coordinate, bool) {
	if r.Lat == nil || r.Lng == nil {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Lat: *r.Lat, Lng: *r.Lng}, true
}

func (r WaterRequest) ResolveUrgency() entities.Urgency {
	return entities.Urgency(strings.ToLower(strings.TrimSpace(r.Urgency)))
}
