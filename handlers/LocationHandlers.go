package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"valuation/models"
	"valuation/services"
)

// GetStates godoc
// @Summary      List states
// @Tags         locations
// @Produce      json
// @Success      200  {object}  models.GeoSelection
// @Router       /api/locations/states [get]
func GetStates(geo services.GeoLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"states": geo.States(), "selection": models.EmptyGeoSelection()})
	}
}

// SelectLocation godoc
// @Summary      Resolve a cascading location selection
// @Description  Rebuilds the posted selection from the hierarchy, sets the value at one level and returns the selection with recomputed option lists
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body  body      models.GeoSelectRequest  true  "Current selection and change"
// @Success      200   {object}  models.GeoSelection
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/locations/select [post]
func SelectLocation(geo services.GeoLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.GeoSelectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		level, ok := models.ParseGeoLevel(req.Level)
		if !ok {
			respondError(c, services.ErrUnknownLevel)
			return
		}
		current := services.ReplaySelection(geo, req.Selection)
		c.JSON(http.StatusOK, services.OnSelect(geo, current, level, req.Value))
	}
}
