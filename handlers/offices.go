package handlers

import (
	"errors"
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"green-justice/database"
	"green-justice/models"
)

// GetOffice returns the contact office for a violation type.
func (h *Handlers) GetOffice(c *gin.Context) {
	violationType := c.Query("violation_type")
	if violationType == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "violation_type is required"})
		return
	}

	office, err := h.offices.FindByViolationType(c.Request.Context(), violationType)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "No office configured for this violation type"})
			return
		}
		log.WithError(err).Error("Failed to load office info")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Error loading office info"})
		return
	}

	c.JSON(http.StatusOK, models.OfficeResponse{Office: *office})
}
