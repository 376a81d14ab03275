package models

import (
	"encoding/json"
	"math"
)

// Kind of marketplace listing.
type Kind string

const (
	KindProperty Kind = "property"
	KindJob      Kind = "job"
)

// Valid reports whether k is a known listing kind.
func (k Kind) Valid() bool {
	return k == KindProperty || k == KindJob
}

// Listing is a property or job posting. Latitude and Longitude are nil when the listing has no location on file.
type Listing struct {
	ID        int      `json:"id"`
	Kind      Kind     `json:"kind"`
	Title     string   `json:"title"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Measurement is a computed distance together with its display string.
// A NaN or infinite DistanceKm is encoded as null; Display still carries it.
type Measurement struct {
	DistanceKm *float64 `json:"distance_km"`
	Display    string   `json:"display"`
}

func (m Measurement) MarshalJSON() ([]byte, error) {
	type measurement Measurement
	out := measurement(m)
	out.DistanceKm = finite(m.DistanceKm)
	return json.Marshal(out)
}

// ListingDistance is a listing annotated with its distance from the viewer.
type ListingDistance struct {
	Listing
	Measurement
}

// MarshalJSON keeps the listing fields that the promoted Measurement.MarshalJSON would drop.
func (d ListingDistance) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Listing
		DistanceKm *float64 `json:"distance_km"`
		Display    string   `json:"display"`
	}{
		Listing:    d.Listing,
		DistanceKm: finite(d.DistanceKm),
		Display:    d.Display,
	})
}

func finite(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}
