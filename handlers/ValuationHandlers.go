package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"valuation/models"
	"valuation/repository"
	"valuation/utils"
)

// ChangeRecorder stores accepted field events. A nil recorder disables auditing.
type ChangeRecorder interface {
	LogChange(ctx context.Context, change models.FieldChange) error
}

// CreateValuation godoc
// @Summary      Start a valuation form
// @Description  Creates an empty form session and returns the edit token needed to change it
// @Tags         valuations
// @Produce      json
// @Success      201  {object}  models.CreateSessionResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/valuations [post]
func CreateValuation(store *repository.SessionStore, issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := store.Create()
		token, expires, err := issuer.GenerateEditToken(session.ID())
		if err != nil {
			_ = store.Delete(session.ID())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue edit token"})
			return
		}

		c.JSON(http.StatusCreated, models.CreateSessionResponse{
			Message:   "Valuation form created successfully",
			SessionID: session.ID(),
			EditToken: token,
			ExpiresAt: expires.Unix(),
			Record:    session.Record(),
		})
	}
}

// GetValuation godoc
// @Summary      Get the current record of a valuation form
// @Tags         valuations
// @Produce      json
// @Param        id   path      string  true  "Valuation ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/valuations/{id} [get]
func GetValuation(store *repository.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"session_id":    session.ID(),
			"property_type": session.PropertyType(),
			"sections":      models.SectionsFor(session.PropertyType()),
			"record":        session.Record(),
		})
	}
}

// GetValuationSection godoc
// @Summary      Get the derived payload of one section
// @Tags         valuations
// @Produce      json
// @Param        id       path      string  true  "Valuation ID"
// @Param        section  path      string  true  "Section key"  example(landDetails)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/valuations/{id}/sections/{section} [get]
func GetValuationSection(store *repository.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		data, err := session.View(c.Param("section"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"section": c.Param("section"), "data": data})
	}
}

// DeleteValuation godoc
// @Summary      Discard a valuation form
// @Tags         valuations
// @Param        id   path      string  true  "Valuation ID"
// @Security     BearerAuth
// @Success      200  {object}  utils.Response
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/valuations/{id} [delete]
func DeleteValuation(store *repository.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Delete(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		utils.SuccessResponse(c, "Valuation discarded", http.StatusOK)
	}
}

// ApplyFieldEvent godoc
// @Summary      Apply a field change
// @Description  Runs one field event through its section and returns the section payload with the whole record
// @Tags         valuations
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Valuation ID"
// @Param        body  body      models.FieldEvent  true  "Field event"
// @Security     BearerAuth
// @Success      200  {object}  models.EventResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/valuations/{id}/events [post]
func ApplyFieldEvent(store *repository.SessionStore, audit ChangeRecorder, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		var ev models.FieldEvent
		if err := c.ShouldBindJSON(&ev); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := session.Apply(ev)
		if err != nil {
			respondError(c, err)
			return
		}

		if audit != nil {
			change := models.FieldChange{
				SessionID: session.ID(),
				Section:   ev.Section,
				Action:    string(ev.Action),
				Field:     ev.Field,
				RowKey:    resp.Row,
				NewValue:  utils.ToString(ev.Value),
				ChangedAt: session.LastActive(),
			}
			if change.Action == "" {
				change.Action = string(models.ActionSet)
			}
			if err := audit.LogChange(c.Request.Context(), change); err != nil {
				logger.Warn("audit log failed", zap.String("session_id", session.ID()), zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// SubmitValuation godoc
// @Summary      Submit a completed valuation
// @Description  Validates required fields and hands the record of the selected property type to the submission sink
// @Tags         valuations
// @Produce      json
// @Param        id   path      string  true  "Valuation ID"
// @Security     BearerAuth
// @Success      201  {object}  models.SubmitResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/valuations/{id}/submit [post]
func SubmitValuation(store *repository.SessionStore, sink repository.SubmissionSink, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		sub, err := session.Submission()
		if err != nil {
			respondError(c, err)
			return
		}

		id, err := sink.Submit(c.Request.Context(), sub)
		if err != nil {
			logger.Error("submission failed", zap.String("session_id", session.ID()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit valuation"})
			return
		}

		c.JSON(http.StatusCreated, models.SubmitResponse{
			Message:      "Valuation submitted successfully",
			SubmissionID: id,
		})
	}
}
