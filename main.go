package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"green-justice/config"
	"green-justice/database"
	"green-justice/handlers"
	"green-justice/middleware"
	"green-justice/reminder"
	"green-justice/session"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using system environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Database connection
	db, err := setupDatabase(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// Initialize database schema and seed the office directory
	if err := database.InitializeSchema(db); err != nil {
		log.WithError(err).Fatal("Failed to initialize database schema")
	}

	// Uploads directory must exist before the first submission
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.WithError(err).Fatal("Failed to create uploads directory")
	}

	// Session registry lives for the process lifetime only
	sessions := session.NewRegistry()

	// Initialize services
	authService := database.NewAuthService(db)
	complaintService := database.NewComplaintService(db)
	officeService := database.NewOfficeService(db)

	// Start the reminder sweeper
	sweeper := reminder.NewSweeper(database.NewReminderService(db), cfg.ReminderInterval, cfg.ReminderAge)
	sweeper.Start()
	defer sweeper.Stop()

	// Setup Gin router
	h := handlers.NewHandlers(authService, complaintService, officeService, sessions, cfg.UploadsDir)
	router := setupRouter(h, sessions, cfg)

	// Start server
	log.Infof("Green Justice server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}

func setupDatabase(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupRouter(h *handlers.Handlers, sessions *session.Registry, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies from config
	router.SetTrustedProxies(cfg.TrustedProxies)

	// Apply global middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeaders())

	// Health check
	router.GET("/health", h.HealthCheck)

	// Uploaded media is served back as static files; access control is
	// knowing the filename.
	router.Static("/uploads", cfg.UploadsDir)

	api := router.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Signup)
			auth.POST("/login", h.Login)
		}
		api.POST("/complaints", h.SubmitComplaint)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(sessions))
		{
			protected.GET("/complaints", h.ListComplaints)
			protected.PATCH("/complaints/:id/status", h.UpdateComplaintStatus)
			protected.DELETE("/complaints/:id", h.DeleteComplaint)
			protected.GET("/offices", h.GetOffice)
		}
	}

	return router
}
