package handler

import (
	"net/http"
	"strconv"

	"listing-distance-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ListingDistance handles GET /listings/:id/distance requests
//
//	@Summary	Distance from the viewer to one listing
//	@Param		id	path		int		true	"listing id"
//	@Param		lat	query		number	false	"viewer latitude"
//	@Param		lon	query		number	false	"viewer longitude"
//	@Success	200	{object}	models.ListingDistance
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/listings/{id}/distance [get]
func (h *DistanceHandler) ListingDistance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	viewer, ok := coordinatesQuery(c, "lat", "lon")
	if !ok {
		return
	}

	result, err := h.service.ListingDistance(c.Request.Context(), id, viewer)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// NearbyListings handles GET /listings/nearby requests
//
//	@Summary	Listings ordered by distance from the viewer
//	@Param		lat		query	number	false	"viewer latitude"
//	@Param		lon		query	number	false	"viewer longitude"
//	@Param		kind	query	string	false	"property or job"
//	@Param		limit	query	int		false	"page size"
//	@Success	200		{array}	models.ListingDistance
//	@Failure	400		{object}	map[string]string
//	@Router		/listings/nearby [get]
func (h *DistanceHandler) NearbyListings(c *gin.Context) {
	viewer, ok := coordinatesQuery(c, "lat", "lon")
	if !ok {
		return
	}

	limit := h.maxLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		if n < limit {
			limit = n
		}
	}

	result, err := h.service.NearbyListings(c.Request.Context(), viewer, models.Kind(c.Query("kind")), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
