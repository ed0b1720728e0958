package database

import (
	"context"
	"database/sql"
	"fmt"

	"green-justice/models"
)

// Sort keys accepted by List. Anything else falls back to SortRecent.
const (
	SortRecent         = "recent"
	SortHighlyReported = "highly-reported"
	SortOldest         = "oldest"
	SortOldestOpen     = "oldest-open"
)

const complaintColumns = "id, violation_type, language, description, location, media_filename, status, reports_count, reminder_sent, created_at, updated_at"

// NewComplaint carries the fields of a public submission. Optional fields are
// stored as NULL when empty.
type NewComplaint struct {
	ViolationType string
	Language      string
	Description   string
	Location      string
	MediaFilename string
}

// ComplaintService handles complaint persistence and triage queries.
type ComplaintService struct {
	db *sql.DB
}

// NewComplaintService creates a new complaint service instance.
func NewComplaintService(db *sql.DB) *ComplaintService {
	return &ComplaintService{db: db}
}

// Create inserts a complaint with status 'open' and returns the stored row,
// including the store-assigned id and timestamps.
func (s *ComplaintService) Create(ctx context.Context, nc NewComplaint) (*models.Complaint, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO complaints (violation_type, language, description, location, media_filename)
		 VALUES (?, ?, ?, ?, ?)`,
		nc.ViolationType, nullable(nc.Language), nullable(nc.Description), nc.Location, nullable(nc.MediaFilename))
	if err != nil {
		return nil, fmt.Errorf("failed to insert complaint: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint id: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID fetches a single complaint regardless of status.
func (s *ComplaintService) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+complaintColumns+" FROM complaints WHERE id = ?", id)

	complaint, err := scanComplaint(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query complaint: %w", err)
	}
	return complaint, nil
}

// List returns all complaints not in 'deleted' status, ordered per the sort
// key. Unrecognized keys silently fall back to the default ordering.
func (s *ComplaintService) List(ctx context.Context, sort string) ([]models.Complaint, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+complaintColumns+" FROM complaints WHERE status != 'deleted' ORDER BY "+orderClause(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints: %w", err)
	}
	defer rows.Close()

	complaints := []models.Complaint{}
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, *complaint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate complaints: %w", err)
	}

	return complaints, nil
}

// UpdateStatus stores the given status as-is and touches updated_at. The
// value is deliberately not validated against the known status set; the
// original system accepts any string here.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE complaints SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, id)
	if err != nil {
		return fmt.Errorf("failed to update complaint status: %w", err)
	}
	return checkAffected(result)
}

// SoftDelete marks a complaint as deleted. The row stays in the store but is
// excluded from every listing.
func (s *ComplaintService) SoftDelete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE complaints SET status = 'deleted', updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		id)
	if err != nil {
		return fmt.Errorf("failed to delete complaint: %w", err)
	}
	return checkAffected(result)
}

func orderClause(sort string) string {
	switch sort {
	case SortHighlyReported:
		return "reports_count DESC, created_at DESC"
	case SortOldest:
		return "created_at ASC"
	case SortOldestOpen:
		return "CASE WHEN status = 'open' THEN 0 ELSE 1 END, created_at ASC"
	default:
		return "created_at DESC"
	}
}

func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComplaint(row rowScanner) (*models.Complaint, error) {
	var (
		c                            models.Complaint
		language, description, media sql.NullString
	)
	err := row.Scan(&c.ID, &c.ViolationType, &language, &description, &c.Location,
		&media, &c.Status, &c.ReportsCount, &c.ReminderSent, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if language.Valid {
		c.Language = &language.String
	}
	if description.Valid {
		c.Description = &description.String
	}
	if media.Valid {
		c.MediaFilename = &media.String
	}
	return &c, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
