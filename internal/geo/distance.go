// Package geo computes great-circle distances between optional coordinates
// and renders them for display.
//
// An absent coordinate is a nil *float64. Absence propagates: if any input
// is nil the distance is nil, and a nil distance renders as UnknownDistance.
// No range validation happens here; out-of-range or non-finite degrees go
// straight through the IEEE-754 arithmetic.
package geo

import (
	"math"
	"math/big"
	"strconv"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// UnknownDistance is what FormatDistance returns for an absent distance.
const UnknownDistance = "Unknown distance"

// Float returns a pointer to v, for building present coordinates and distances.
func Float(v float64) *float64 {
	return &v
}

// Distance returns the great-circle distance in kilometers between
// (lat1, lon1) and (lat2, lon2), or nil if any of the four values is nil.
func Distance(lat1, lon1, lat2, lon2 *float64) *float64 {
	if lat1 == nil || lon1 == nil || lat2 == nil || lon2 == nil {
		return nil
	}
	d := Haversine(*lat1, *lon1, *lat2, *lon2)
	return &d
}

// Haversine calculates the great-circle distance in kilometers between two points
// given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRad(lat1)
	lon1Rad := toRad(lon1)
	lat2Rad := toRad(lat2)
	lon2Rad := toRad(lon2)

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// FormatDistance renders a distance in kilometers for display.
//
// Below 1 km the value is shown in whole meters ("500 m"), from 1 km upward
// with one decimal ("3.2 km"). A nil distance yields UnknownDistance.
func FormatDistance(km *float64) string {
	if km == nil {
		return UnknownDistance
	}
	d := *km
	if d < 1 {
		return formatMeters(d*1000) + " m"
	}
	return formatTenths(d) + " km"
}

func formatMeters(m float64) string {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return nonFinite(m)
	}
	m = math.Round(m)
	if m == 0 {
		// Drop the sign of negative zero.
		m = 0
	}
	return strconv.FormatFloat(m, 'f', 0, 64)
}

// formatTenths prints v >= 1 with exactly one decimal digit. strconv breaks
// exact binary ties toward even; display formatting breaks them upward, so
// the rounding is done on the exact value instead.
func formatTenths(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nonFinite(v)
	}
	x := new(big.Float).SetPrec(256).SetFloat64(v)
	x.Mul(x, big.NewFloat(10))
	x.Add(x, big.NewFloat(0.5))
	tenths, _ := x.Int(nil)

	whole, frac := new(big.Int).QuoRem(tenths, big.NewInt(10), new(big.Int))
	return whole.String() + "." + frac.String()
}

func nonFinite(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	default:
		return "NaN"
	}
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
