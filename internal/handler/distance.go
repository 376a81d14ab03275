package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"listing-distance-api/internal/geo"
	"listing-distance-api/internal/models"
	"listing-distance-api/internal/repository"
	"listing-distance-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DistanceService interface for dependency injection
type DistanceService interface {
	Measure(from, to geo.Coordinates) (models.Measurement, error)
	ListingDistance(ctx context.Context, id int, viewer geo.Coordinates) (*models.ListingDistance, error)
	NearbyListings(ctx context.Context, viewer geo.Coordinates, kind models.Kind, limit int) ([]models.ListingDistance, error)
}

// DistanceHandler handles distance requests
type DistanceHandler struct {
	service  DistanceService
	maxLimit int
}

// NewDistanceHandler creates a new distance handler. maxLimit caps the size of listing pages.
func NewDistanceHandler(svc DistanceService, maxLimit int) *DistanceHandler {
	return &DistanceHandler{service: svc, maxLimit: maxLimit}
}

// Distance handles GET /distance requests
//
//	@Summary	Distance between two points
//	@Param		lat1	query		number	false	"latitude of the first point"
//	@Param		lon1	query		number	false	"longitude of the first point"
//	@Param		lat2	query		number	false	"latitude of the second point"
//	@Param		lon2	query		number	false	"longitude of the second point"
//	@Success	200		{object}	models.Measurement
//	@Failure	400		{object}	map[string]string
//	@Router		/distance [get]
func (h *DistanceHandler) Distance(c *gin.Context) {
	from, ok := coordinatesQuery(c, "lat1", "lon1")
	if !ok {
		return
	}
	to, ok := coordinatesQuery(c, "lat2", "lon2")
	if !ok {
		return
	}

	m, err := h.service.Measure(from, to)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// coordinatesQuery reads an optional coordinate pair. A missing or empty
// parameter is absent; a malformed one aborts with 400.
func coordinatesQuery(c *gin.Context, latKey, lonKey string) (geo.Coordinates, bool) {
	lat, err := optionalFloat(c.Query(latKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + latKey + " format"})
		return geo.Coordinates{}, false
	}
	lon, err := optionalFloat(c.Query(lonKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + lonKey + " format"})
		return geo.Coordinates{}, false
	}
	return geo.Coordinates{Lat: lat, Lon: lon}, true
}

func optionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCoordinates):
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
	case errors.Is(err, service.ErrInvalidKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be 'property' or 'job'"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
