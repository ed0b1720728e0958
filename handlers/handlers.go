package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"green-justice/database"
	"green-justice/session"
)

// Handlers wires HTTP requests to the domain services.
type Handlers struct {
	auth       *database.AuthService
	complaints *database.ComplaintService
	offices    *database.OfficeService
	sessions   *session.Registry
	uploadsDir string
}

// NewHandlers creates a new handlers instance.
func NewHandlers(auth *database.AuthService, complaints *database.ComplaintService,
	offices *database.OfficeService, sessions *session.Registry, uploadsDir string) *Handlers {
	return &Handlers{
		auth:       auth,
		complaints: complaints,
		offices:    offices,
		sessions:   sessions,
		uploadsDir: uploadsDir,
	}
}

// HealthCheck returns the service health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "green-justice",
	})
}
