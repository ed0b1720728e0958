package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"green-justice/database"
	"green-justice/models"
)

const submissionAck = "Thank you for helping to keep the environment clean. Your report has been received."

// SubmitComplaint handles the public submission endpoint. No authentication
// required; anyone may report a violation.
func (h *Handlers) SubmitComplaint(c *gin.Context) {
	violationType := c.PostForm("violation_type")
	location := c.PostForm("location")
	if violationType == "" || location == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Violation type and location are required"})
		return
	}

	// Media is written to disk before the row referencing it is created. A
	// failure in between leaves an orphaned file, which is accepted.
	mediaFilename := ""
	if file, err := c.FormFile("media"); err == nil {
		mediaFilename = mediaFileName(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(h.uploadsDir, mediaFilename)); err != nil {
			log.WithError(err).Error("Failed to store uploaded media")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Error saving complaint"})
			return
		}
	}

	complaint, err := h.complaints.Create(c.Request.Context(), database.NewComplaint{
		ViolationType: violationType,
		Language:      c.PostForm("language"),
		Description:   c.PostForm("description"),
		Location:      location,
		MediaFilename: mediaFilename,
	})
	if err != nil {
		log.WithError(err).Error("Failed to save complaint")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Error saving complaint"})
		return
	}

	c.JSON(http.StatusCreated, models.ComplaintResponse{
		Message:   submissionAck,
		Complaint: *complaint,
	})
}

// ListComplaints returns all non-deleted complaints for the dashboard, sorted
// per the sort query parameter.
func (h *Handlers) ListComplaints(c *gin.Context) {
	sort := c.DefaultQuery("sort", database.SortRecent)

	complaints, err := h.complaints.List(c.Request.Context(), sort)
	if err != nil {
		log.WithError(err).Error("Failed to load complaints")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Error loading complaints"})
		return
	}

	c.JSON(http.StatusOK, models.ComplaintListResponse{Complaints: complaints})
}

// UpdateComplaintStatus stores a new status for a complaint and touches its
// updated_at timestamp.
func (h *Handlers) UpdateComplaintStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Complaint not found"})
		return
	}

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Status is required"})
		return
	}

	if err := h.complaints.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Complaint not found"})
			return
		}
		log.WithError(err).Error("Failed to update complaint status")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Error updating status"})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Status updated"})
}

// DeleteComplaint soft-deletes a complaint reported as a fake allegation. The
// row stays in the store with status 'deleted'.
func (h *Handlers) DeleteComplaint(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Complaint not found"})
		return
	}

	if err := h.complaints.SoftDelete(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Complaint not found"})
			return
		}
		log.WithError(err).Error("Failed to delete complaint")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Error deleting complaint"})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Complaint deleted as fake allegation"})
}

// mediaFileName builds a unique on-disk name for an upload, keeping only the
// extension of the client-supplied name.
func mediaFileName(original string) string {
	return fmt.Sprintf("media-%d-%d%s", time.Now().UnixMilli(), rand.Intn(1e9), filepath.Ext(original))
}
