package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// ReminderService flags complaints left unaddressed past a threshold age.
type ReminderService struct {
	db *sql.DB
}

// NewReminderService creates a new reminder service instance.
func NewReminderService(db *sql.DB) *ReminderService {
	return &ReminderService{db: db}
}

// FlagStale selects complaints that are neither resolved nor deleted, have
// not been flagged yet, and are at least age old, then sets reminder_sent on
// the whole batch. Returns the number of complaints flagged. The select and
// the update are not transactionally isolated from concurrent status changes;
// a complaint resolved in between may still be flagged once.
func (s *ReminderService) FlagStale(ctx context.Context, age time.Duration) (int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM complaints
		 WHERE status NOT IN ('resolved', 'deleted')
		   AND reminder_sent = 0
		   AND created_at <= NOW() - INTERVAL ? SECOND`,
		int64(age.Seconds()))
	if err != nil {
		return 0, fmt.Errorf("failed to query stale complaints: %w", err)
	}
	defer rows.Close()

	var ids []interface{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to scan complaint id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to iterate stale complaints: %w", err)
	}

	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	_, err = s.db.ExecContext(ctx,
		"UPDATE complaints SET reminder_sent = 1 WHERE id IN ("+placeholders+")", ids...)
	if err != nil {
		return 0, fmt.Errorf("failed to mark reminders sent: %w", err)
	}

	return len(ids), nil
}
