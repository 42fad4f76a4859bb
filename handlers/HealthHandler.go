package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"valuation/models"
	"valuation/repository"
	"valuation/storage"
)

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  models.HealthResponse
// @Failure      503  {object}  models.HealthResponse
// @Router       /api/health [get]
func Health(store *repository.SessionStore, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := models.HealthResponse{Status: "ok", DBStatus: "disabled", Sessions: store.Count()}
		if db != nil {
			if err := storage.Ping(c.Request.Context(), db); err != nil {
				resp.Status = "degraded"
				resp.DBStatus = "unreachable"
				c.JSON(http.StatusServiceUnavailable, resp)
				return
			}
			resp.DBStatus = "ok"
		}
		c.JSON(http.StatusOK, resp)
	}
}
