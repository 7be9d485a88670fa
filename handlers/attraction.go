package handlers

import (
	"net/http"
	"strconv"

	"mandry/models"
	"mandry/services/attraction"
	"mandry/services/places"
	"mandry/utils"

	"github.com/gin-gonic/gin"
)

// AttractionHandler exposes the attraction directory endpoints.
type AttractionHandler struct {
	AttractionService attraction.AttractionService
}

// NewAttractionHandler creates an AttractionHandler.
func NewAttractionHandler(svc attraction.AttractionService) *AttractionHandler {
	return &AttractionHandler{AttractionService: svc}
}

// ListHandler handles GET /api/attractions.
func (h *AttractionHandler) ListHandler(c *gin.Context) {
	category := models.Category(c.Query("category"))

	attractions, err := h.AttractionService.List(category)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	if attractions == nil {
		attractions = []models.Attraction{}
	}
	c.JSON(http.StatusOK, attractions)
}

// GetHandler handles GET /api/attractions/:id.
func (h *AttractionHandler) GetHandler(c *gin.Context) {
	result, err := h.AttractionService.Get(c.Param("id"))
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateHandler handles POST /api/attractions.
func (h *AttractionHandler) CreateHandler(c *gin.Context) {
	var payload models.Attraction
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid attraction payload", err.Error())
		return
	}

	created, err := h.AttractionService.Create(&payload)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler handles PUT /api/attractions/:id.
func (h *AttractionHandler) UpdateHandler(c *gin.Context) {
	var payload models.Attraction
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid attraction payload", err.Error())
		return
	}

	updated, err := h.AttractionService.Update(c.Param("id"), &payload)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteHandler handles DELETE /api/attractions/:id.
func (h *AttractionHandler) DeleteHandler(c *gin.Context) {
	if err := h.AttractionService.Delete(c.Param("id")); err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attraction deleted successfully"})
}

// geoQueryFromRequest parses the lat/lng/radius query parameters.
func geoQueryFromRequest(c *gin.Context) (places.GeoQuery, bool) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "Latitude and longitude are required", "")
		return places.GeoQuery{}, false
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid latitude", latStr)
		return places.GeoQuery{}, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid longitude", lngStr)
		return places.GeoQuery{}, false
	}
	radius := 0
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err = strconv.Atoi(radiusStr)
		if err != nil || radius < 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid radius", radiusStr)
			return places.GeoQuery{}, false
		}
	}
	return places.GeoQuery{Lat: lat, Lng: lng, Radius: radius}, true
}

// NearbyHandler handles GET /api/places/nearby.
func (h *AttractionHandler) NearbyHandler(c *gin.Context) {
	location, ok := geoQueryFromRequest(c)
	if !ok {
		return
	}

	results, err := h.AttractionService.Nearby(c.Request.Context(), location)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	if results == nil {
		results = []places.PlaceSummary{}
	}
	c.JSON(http.StatusOK, results)
}

// SearchHandler handles GET /api/places/search.
func (h *AttractionHandler) SearchHandler(c *gin.Context) {
	location, ok := geoQueryFromRequest(c)
	if !ok {
		return
	}

	results, err := h.AttractionService.Search(c.Request.Context(), c.Query("query"), location)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	if results == nil {
		results = []places.PlaceSummary{}
	}
	c.JSON(http.StatusOK, results)
}

// ImportHandler handles POST /api/places/import.
func (h *AttractionHandler) ImportHandler(c *gin.Context) {
	var req struct {
		PlaceID string `json:"placeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Place ID is required", err.Error())
		return
	}

	imported, err := h.AttractionService.ImportFromPlace(c.Request.Context(), req.PlaceID)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, imported)
}
