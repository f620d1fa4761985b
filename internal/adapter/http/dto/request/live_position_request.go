package request

import "moyo_dispatch/internal/domain/geo"

// LivePositionRequest carries a supplier's current coordinate. Pointers
// distinguish an absent field from a genuine zero.
type LivePositionRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

func (r LivePositionRequest) ResolveLocation() (geo.Coordinate, bool) {
	if r.Lat == nil || r.Lng == nil {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Lat: *r.Lat, Lng: *r.Lng}, true
}
