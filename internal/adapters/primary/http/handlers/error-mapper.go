package handlers

import (
	"errors"
	"net/http"

	"price-prediction-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Unknown model is the caller naming something that does not exist
	case errors.Is(err, domain.ErrUnknownModel),
		errors.Is(err, domain.ErrInvalidModelName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Validation errors
	case domain.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	// Model artifacts missing or unreadable
	case domain.IsUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model error: " + err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
