package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"listing-distance-api/internal/geo"
	"listing-distance-api/internal/metrics"
	"listing-distance-api/internal/models"
)

var (
	// ErrInvalidCoordinates is returned when a present coordinate is out of range or not finite.
	ErrInvalidCoordinates = errors.New("service: invalid coordinates")
	// ErrInvalidKind is returned for a listing kind filter other than property or job.
	ErrInvalidKind = errors.New("service: invalid listing kind")
)

// ListingRepository interface for dependency injection
type ListingRepository interface {
	GetListing(ctx context.Context, id int) (*models.Listing, error)
	ListListings(ctx context.Context, kind models.Kind, limit int) ([]models.Listing, error)
}

// DistanceService measures how far listings are from a viewer
type DistanceService struct {
	repo     ListingRepository
	validate bool
}

// NewDistanceService creates a new distance service. With validate set,
// coordinates supplied by callers are range checked before use.
func NewDistanceService(repo ListingRepository, validate bool) *DistanceService {
	return &DistanceService{repo: repo, validate: validate}
}

// Measure returns the distance between two points and its display form.
// Missing coordinates are not an error; they yield an unknown distance.
func (s *DistanceService) Measure(from, to geo.Coordinates) (models.Measurement, error) {
	if err := s.check(from); err != nil {
		return models.Measurement{}, err
	}
	if err := s.check(to); err != nil {
		return models.Measurement{}, err
	}
	return measure(from, to), nil
}

// ListingDistance returns a listing together with its distance from viewer
func (s *DistanceService) ListingDistance(ctx context.Context, id int, viewer geo.Coordinates) (*models.ListingDistance, error) {
	if err := s.check(viewer); err != nil {
		return nil, err
	}

	listing, err := s.repo.GetListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load listing: %w", err)
	}

	return &models.ListingDistance{
		Listing:     *listing,
		Measurement: measure(viewer, locationOf(*listing)),
	}, nil
}

// NearbyListings returns listings ordered by distance from viewer, closest first.
// Listings whose distance is unknown come last, in id order.
func (s *DistanceService) NearbyListings(ctx context.Context, viewer geo.Coordinates, kind models.Kind, limit int) ([]models.ListingDistance, error) {
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	if err := s.check(viewer); err != nil {
		return nil, err
	}

	listings, err := s.repo.ListListings(ctx, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings: %w", err)
	}

	result := make([]models.ListingDistance, 0, len(listings))
	for _, l := range listings {
		result = append(result, models.ListingDistance{
			Listing:     l,
			Measurement: measure(viewer, locationOf(l)),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return closer(result[i], result[j])
	})

	return result, nil
}

func (s *DistanceService) check(c geo.Coordinates) error {
	if s.validate && !c.InRange() {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinates, c)
	}
	return nil
}

func measure(from, to geo.Coordinates) models.Measurement {
	d := from.DistanceTo(to)
	metrics.ObserveMeasurement(d != nil)
	return models.Measurement{
		DistanceKm: d,
		Display:    geo.FormatDistance(d),
	}
}

func locationOf(l models.Listing) geo.Coordinates {
	return geo.Coordinates{Lat: l.Latitude, Lon: l.Longitude}
}

func closer(a, b models.ListingDistance) bool {
	ka, kb := sortable(a.DistanceKm), sortable(b.DistanceKm)
	if ka != kb {
		return ka
	}
	if ka && *a.DistanceKm != *b.DistanceKm {
		return *a.DistanceKm < *b.DistanceKm
	}
	return a.ID < b.ID
}

// NaN only shows up with validation disabled; it sorts with the unknowns.
func sortable(d *float64) bool {
	return d != nil && !math.IsNaN(*d)
}
