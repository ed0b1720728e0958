package handlers

import (
	"errors"
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"green-justice/database"
	"green-justice/models"
)

// Signup handles authority registration. On success it mints a session token
// so the new account is logged in immediately.
func (h *Handlers) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "All fields are required"})
		return
	}

	authority, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, database.ErrEmailTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Message: "Email is already registered"})
			return
		}
		log.WithError(err).Error("Failed to create authority account")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Error creating account"})
		return
	}

	token, err := h.sessions.Create(*authority)
	if err != nil {
		log.WithError(err).Error("Failed to create session")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Error creating account"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{Token: token, Authority: *authority})
}

// Login handles authority authentication. The failure message is the same for
// an unknown email and a wrong password.
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Email and password are required"})
		return
	}

	authority, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, database.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid credentials"})
			return
		}
		log.WithError(err).Error("Failed to log in authority")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Error logging in"})
		return
	}

	token, err := h.sessions.Create(*authority)
	if err != nil {
		log.WithError(err).Error("Failed to create session")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Error logging in"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{Token: token, Authority: *authority})
}
