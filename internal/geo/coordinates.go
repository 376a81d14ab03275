package geo

import (
	"fmt"
	"math"
)

// Coordinates is a point in decimal degrees whose halves may each be unknown.
type Coordinates struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// Point returns fully known coordinates.
func Point(lat, lon float64) Coordinates {
	return Coordinates{Lat: Float(lat), Lon: Float(lon)}
}

// Known reports whether both latitude and longitude are present.
func (c Coordinates) Known() bool {
	return c.Lat != nil && c.Lon != nil
}

// DistanceTo returns the distance in kilometers to other, nil if either side is incomplete.
func (c Coordinates) DistanceTo(other Coordinates) *float64 {
	return Distance(c.Lat, c.Lon, other.Lat, other.Lon)
}

// InRange reports whether every present half is a finite value within
// latitude [-90, 90] and longitude [-180, 180].
func (c Coordinates) InRange() bool {
	if c.Lat != nil && !within(*c.Lat, 90) {
		return false
	}
	if c.Lon != nil && !within(*c.Lon, 180) {
		return false
	}
	return true
}

func (c Coordinates) String() string {
	return "[" + half(c.Lat) + ";" + half(c.Lon) + "]"
}

func within(v, limit float64) bool {
	return !math.IsNaN(v) && v >= -limit && v <= limit
}

func half(v *float64) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%f", *v)
}
