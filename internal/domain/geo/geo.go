package geo

import (
	"fmt"
	"math"
)

const earthRadiusKM = 6371

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether both components are finite numbers. NaN and
// infinities (e.g. from a failed geolocation read) are rejected.
func (c Coordinate) Valid() bool {
	return isFinite(c.Lat) && isFinite(c.Lng)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// JubaCenter is the service city's reference point. Requests without a
// usable device coordinate fall back here.
var JubaCenter = Coordinate{Lat: 4.8594, Lng: 31.5713}

// Distance returns the great-circle distance between a and b in kilometers
// (haversine formula).
func Distance(a, b Coordinate) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)
	latA := toRadians(a.Lat)
	latB := toRadians(b.Lat)
	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// FormatDistance renders a distance in kilometers as a short human string:
// meters below one kilometer, otherwise kilometers with one decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0f m", km*1000)
	}
	return fmt.Sprintf("%.1f km", km)
}

// Bounds is a rectangular lat/lng box.
type Bounds struct {
	SouthWest Coordinate `json:"south_west"`
	NorthEast Coordinate `json:"north_east"`
}

// CityBounds is the fixed viewport box around Juba. Map views are
// constrained to it; simulated positions are clamped into it.
var CityBounds = Bounds{
	SouthWest: Coordinate{Lat: 4.70, Lng: 31.40},
	NorthEast: Coordinate{Lat: 5.02, Lng: 31.75},
}

func (b Bounds) Contains(c Coordinate) bool {
	return c.Lat >= b.SouthWest.Lat && c.Lat <= b.NorthEast.Lat &&
		c.Lng >= b.SouthWest.Lng && c.Lng <= b.NorthEast.Lng
}

// Clamp returns c moved to the nearest point inside b.
func (b Bounds) Clamp(c Coordinate) Coordinate {
	return Coordinate{
		Lat: math.Min(math.Max(c.Lat, b.SouthWest.Lat), b.NorthEast.Lat),
		Lng: math.Min(math.Max(c.Lng, b.SouthWest.Lng), b.NorthEast.Lng),
	}
}

// clampTo limits inner to the box of outer on each edge.
func (b Bounds) clampTo(outer Bounds) Bounds {
	return Bounds{
		SouthWest: outer.Clamp(b.SouthWest),
		NorthEast: outer.Clamp(b.NorthEast),
	}
}

// FitBounds computes the viewport box covering the given points, expanded by
// paddingDeg on every edge and constrained to the city box. With no points
// it returns a padded box around the city center.
func FitBounds(points []Coordinate, paddingDeg float64) Bounds {
	if len(points) == 0 {
		points = []Coordinate{JubaCenter}
	}
	fitted := Bounds{SouthWest: points[0], NorthEast: points[0]}
	for _, p := range points[1:] {
		fitted.SouthWest.Lat = math.Min(fitted.SouthWest.Lat, p.Lat)
		fitted.SouthWest.Lng = math.Min(fitted.SouthWest.Lng, p.Lng)
		fitted.NorthEast.Lat = math.Max(fitted.NorthEast.Lat, p.Lat)
		fitted.NorthEast.Lng = math.Max(fitted.NorthEast.Lng, p.Lng)
	}
	fitted.SouthWest.Lat -= paddingDeg
	fitted.SouthWest.Lng -= paddingDeg
	fitted.NorthEast.Lat += paddingDeg
	fitted.NorthEast.Lng += paddingDeg
	return fitted.clampTo(CityBounds)
}

// StepToward moves from a fixed fraction of the remaining distance toward
// to, snapping exactly onto to once within snapKM.
func StepToward(from, to Coordinate, fraction, snapKM float64) Coordinate {
	if Distance(from, to) <= snapKM {
		return to
	}
	return Coordinate{
		Lat: from.Lat + (to.Lat-from.Lat)*fraction,
		Lng: from.Lng + (to.Lng-from.Lng)*fraction,
	}
}
