package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"valuation/models"
	"valuation/services"
)

// GetApprovalKinds godoc
// @Summary      List approval document kinds per slot
// @Tags         approvals
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/approvals/kinds [get]
func GetApprovalKinds() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"building": models.BuildingApprovalKinds,
			"land":     models.LandApprovalKinds,
		})
	}
}

// ClassifyApproval godoc
// @Summary      Classify an approval kind
// @Description  Returns the detail schema of a kind, or the issuing-body prompt it needs first. With body set, returns the schema for that body.
// @Tags         approvals
// @Produce      json
// @Param        kind  query     string  true   "Approval kind"  example(SANCTION PLAN)
// @Param        body  query     string  false  "Issuing body"   example(GHMC DPMS)
// @Success      200   {object}  models.Classification
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/approvals/classify [get]
func ClassifyApproval() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, err := services.ParseApprovalKind(c.Query("kind"))
		if err != nil {
			respondError(c, err)
			return
		}
		classification, err := services.Classify(kind)
		if err != nil {
			respondError(c, err)
			return
		}

		if raw := c.Query("body"); raw != "" {
			body, err := services.ParseIssuingBody(raw)
			if err != nil {
				respondError(c, err)
				return
			}
			schema, err := services.SchemaFor(kind, body)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"kind": kind, "body": body, "schema": schema})
			return
		}
		c.JSON(http.StatusOK, classification)
	}
}
