package models

import "time"

// Authority is a registered account allowed to view and triage complaints.
// The password hash never leaves the database layer.
type Authority struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Office is a directory contact record for a violation type.
type Office struct {
	ID            int64  `json:"id"`
	ViolationType string `json:"violation_type"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Email         string `json:"email"`
}

// Complaint is a submitted environmental-violation report.
type Complaint struct {
	ID            int64     `json:"id"`
	ViolationType string    `json:"violation_type"`
	Language      *string   `json:"language"`
	Description   *string   `json:"description"`
	Location      string    `json:"location"`
	MediaFilename *string   `json:"media_filename"`
	Status        string    `json:"status"`
	ReportsCount  int       `json:"reports_count"`
	ReminderSent  int       `json:"reminder_sent"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Complaint status values. The status column is free text in the store; these
// are the values the system itself writes.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusDeleted    = "deleted"
)

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StatusUpdateRequest is the body of PATCH /api/complaints/:id/status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// AuthResponse is returned by both signup and login.
type AuthResponse struct {
	Token     string    `json:"token"`
	Authority Authority `json:"authority"`
}

// ComplaintResponse acknowledges a public submission.
type ComplaintResponse struct {
	Message   string    `json:"message"`
	Complaint Complaint `json:"complaint"`
}

// ComplaintListResponse wraps the dashboard listing.
type ComplaintListResponse struct {
	Complaints []Complaint `json:"complaints"`
}

// OfficeResponse wraps a single office lookup.
type OfficeResponse struct {
	Office Office `json:"office"`
}

// MessageResponse is a bare human-readable acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Message string `json:"message"`
}
