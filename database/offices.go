package database

import (
	"context"
	"database/sql"
	"fmt"

	"green-justice/models"
)

// OfficeService resolves the contact office for a violation type.
type OfficeService struct {
	db *sql.DB
}

// NewOfficeService creates a new office lookup service instance.
func NewOfficeService(db *sql.DB) *OfficeService {
	return &OfficeService{db: db}
}

// FindByViolationType returns the first office configured for the violation
// type, or ErrNotFound. Duplicate entries are not an error; first match wins.
func (s *OfficeService) FindByViolationType(ctx context.Context, violationType string) (*models.Office, error) {
	var (
		office                models.Office
		phone, address, email sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, violation_type, name, phone, address, email FROM offices WHERE violation_type = ? LIMIT 1",
		violationType).Scan(&office.ID, &office.ViolationType, &office.Name, &phone, &address, &email)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query office: %w", err)
	}

	office.Phone = phone.String
	office.Address = address.String
	office.Email = email.String
	return &office, nil
}
