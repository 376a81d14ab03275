package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"listing-distance-api/internal/geo"
	"listing-distance-api/internal/handler"
	"listing-distance-api/internal/models"
	"listing-distance-api/internal/repository"
	"listing-distance-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository map[int]models.Listing

func (m memoryRepository) GetListing(_ context.Context, id int) (*models.Listing, error) {
	l, ok := m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &l, nil
}

func (m memoryRepository) ListListings(_ context.Context, kind models.Kind, limit int) ([]models.Listing, error) {
	var out []models.Listing
	for id := 1; id <= len(m) && len(out) < limit; id++ {
		if l, ok := m[id]; ok && (kind == "" || l.Kind == kind) {
			out = append(out, l)
		}
	}
	return out, nil
}

func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := memoryRepository{
		1: {ID: 1, Kind: models.KindProperty, Title: "Downtown LA loft", Latitude: geo.Float(34.0522), Longitude: geo.Float(-118.2437)},
		2: {ID: 2, Kind: models.KindJob, Title: "Remote support"},
	}
	svc := service.NewDistanceService(repo, true)
	return newRouter(handler.NewDistanceHandler(svc, 50))
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRouter_Health(t *testing.T) {
	w := get(t, newTestServer(), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_DistanceNewYorkToLosAngeles(t *testing.T) {
	w := get(t, newTestServer(), "/distance?lat1=40.7128&lon1=-74.0060&lat2=34.0522&lon2=-118.2437")
	require.Equal(t, http.StatusOK, w.Code)

	var m models.Measurement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	require.NotNil(t, m.DistanceKm)
	assert.InDelta(t, 3940, *m.DistanceKm, 5)
	assert.Regexp(t, `^393\d\.\d km$`, m.Display)
}

func TestRouter_ListingDistance(t *testing.T) {
	r := newTestServer()

	w := get(t, r, "/listings/1/distance?lat=40.7128&lon=-74.0060")
	require.Equal(t, http.StatusOK, w.Code)
	var ld models.ListingDistance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ld))
	assert.Equal(t, "Downtown LA loft", ld.Title)
	assert.Regexp(t, `^393\d\.\d km$`, ld.Display)

	w = get(t, r, "/listings/2/distance?lat=40.7128&lon=-74.0060")
	require.Equal(t, http.StatusOK, w.Code)
	ld = models.ListingDistance{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ld))
	assert.Nil(t, ld.DistanceKm)
	assert.Equal(t, geo.UnknownDistance, ld.Display)

	w = get(t, r, "/listings/3/distance")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_NearbyListings(t *testing.T) {
	w := get(t, newTestServer(), "/listings/nearby?lat=34.0567&lon=-118.2437")
	require.Equal(t, http.StatusOK, w.Code)

	var page []models.ListingDistance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page, 2)
	assert.Equal(t, 1, page[0].ID)
	assert.Equal(t, "500 m", page[0].Display)
	assert.Equal(t, geo.UnknownDistance, page[1].Display)
}

func TestRouter_SwaggerAndMetrics(t *testing.T) {
	r := newTestServer()

	w := get(t, r, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Listing Distance API")

	get(t, r, "/distance")
	w = get(t, r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "listing_distance_measurements_total")
}

func TestRouter_NonFiniteWithoutValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := memoryRepository{
		1: {ID: 1, Kind: models.KindProperty, Title: "Downtown LA loft", Latitude: geo.Float(34.0522), Longitude: geo.Float(-118.2437)},
		2: {ID: 2, Kind: models.KindJob, Title: "Remote support"},
	}
	r := newRouter(handler.NewDistanceHandler(service.NewDistanceService(repo, false), 50))

	tests := []struct {
		name   string
		target string
	}{
		{name: "NaN latitude", target: "/distance?lat1=NaN&lon1=0&lat2=0&lon2=0"},
		{name: "infinite latitude", target: "/distance?lat1=Inf&lon1=0&lat2=0&lon2=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, r, tt.target)
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"distance_km":null,"display":"NaN km"}`, w.Body.String())
		})
	}

	t.Run("nearby with NaN viewer", func(t *testing.T) {
		w := get(t, r, "/listings/nearby?lat=NaN&lon=0")
		require.Equal(t, http.StatusOK, w.Code)

		var page []models.ListingDistance
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page, 2)
		assert.Equal(t, 1, page[0].ID)
		assert.Equal(t, "Downtown LA loft", page[0].Title)
		assert.Nil(t, page[0].DistanceKm)
		assert.Equal(t, "NaN km", page[0].Display)
		assert.Equal(t, geo.UnknownDistance, page[1].Display)
	})
}
