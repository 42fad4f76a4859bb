package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"valuation/repository"
	"valuation/services"
)

// respondError maps engine and store errors to a status and the usual {"error": ...} body.
func respondError(c *gin.Context, err error) {
	var missing *services.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": missing.Message, "fields": missing.Fields})
	case errors.Is(err, repository.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Valuation not found"})
	case errors.Is(err, services.ErrRowNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDateOrder),
		errors.Is(err, services.ErrSubchoicePending),
		errors.Is(err, services.ErrNoDetails):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnknownSection),
		errors.Is(err, services.ErrUnknownField),
		errors.Is(err, services.ErrUnknownAction),
		errors.Is(err, services.ErrRowRequired),
		errors.Is(err, services.ErrUnknownApprovalKind),
		errors.Is(err, services.ErrUnknownIssuingBody),
		errors.Is(err, services.ErrUnknownLevel),
		errors.Is(err, services.ErrUnknownDocumentType),
		errors.Is(err, services.ErrUnknownUtility),
		errors.Is(err, services.ErrInvalidOption):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
