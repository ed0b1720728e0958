package handlers

import (
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"green-justice/database"
	"green-justice/middleware"
	"green-justice/session"
)

// newTestEnv builds a router with the real route layout over a mocked store.
func newTestEnv(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *session.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var (
		db   *sql.DB
		mock sqlmock.Sqlmock
		err  error
	)
	db, mock, err = sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	sessions := session.NewRegistry()
	h := NewHandlers(
		database.NewAuthService(db),
		database.NewComplaintService(db),
		database.NewOfficeService(db),
		sessions,
		t.TempDir(),
	)

	router := gin.New()
	router.POST("/api/auth/signup", h.Signup)
	router.POST("/api/auth/login", h.Login)
	router.POST("/api/complaints", h.SubmitComplaint)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(sessions))
	{
		protected.GET("/complaints", h.ListComplaints)
		protected.PATCH("/complaints/:id/status", h.UpdateComplaintStatus)
		protected.DELETE("/complaints/:id", h.DeleteComplaint)
		protected.GET("/offices", h.GetOffice)
	}

	return router, mock, sessions
}
