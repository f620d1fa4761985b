package response

import (
	"time"

	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/domain/geo"
	"moyo_dispatch/internal/usecase"
)

type LivePositionResponse struct {
	SupplierID   string    `json:"supplier_id"`
	Name         string    `json:"name"`
	VehiclePlate string    `json:"vehicle_plate"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromLivePosition(p entities.LivePosition) LivePositionResponse {
	return LivePositionResponse{
		SupplierID:   p.SupplierID,
		Name:         p.Name,
		VehiclePlate: p.VehiclePlate,
		Lat:          p.Location.Lat,
		Lng:          p.Location.Lng,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromLivePositions(positions []entities.LivePosition) []LivePositionResponse {
	out := make([]LivePositionResponse, 0, len(positions))
	for _, p := range positions {
		out = append(out, FromLivePosition(p))
	}
	return out
}

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type BoundsResponse struct {
	SouthWest CoordinateResponse `json:"south_west"`
	NorthEast CoordinateResponse `json:"north_east"`
}

func fromCoordinate(c geo.Coordinate) CoordinateResponse {
	return CoordinateResponse{Lat: c.Lat, Lng: c.Lng}
}

type MapViewResponse struct {
	Demands   []DemandResponse       `json:"demands"`
	Suppliers []LivePositionResponse `json:"suppliers"`
	Household *CoordinateResponse    `json:"household,omitempty"`
	Bounds    BoundsResponse         `json:"bounds"`
}

func FromMapView(v usecase.MapView) MapViewResponse {
	res := MapViewResponse{
		Demands:   FromDemands(v.Demands),
		Suppliers: FromLivePositions(v.Suppliers),
		Bounds: BoundsResponse{
			SouthWest: fromCoordinate(v.Bounds.SouthWest),
			NorthEast: fromCoordinate(v.Bounds.NorthEast),
		},
	}
	if v.Household != nil {
		h := fromCoordinate(*v.Household)
		res.Household = &h
	}
	return res
}
