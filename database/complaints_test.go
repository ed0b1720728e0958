package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

var complaintCols = []string{
	"id", "violation_type", "language", "description", "location",
	"media_filename", "status", "reports_count", "reminder_sent",
	"created_at", "updated_at",
}

func TestOrderClause(t *testing.T) {
	testCases := []struct {
		sort     string
		expected string
	}{
		{SortRecent, "created_at DESC"},
		{SortHighlyReported, "reports_count DESC, created_at DESC"},
		{SortOldest, "created_at ASC"},
		{SortOldestOpen, "CASE WHEN status = 'open' THEN 0 ELSE 1 END, created_at ASC"},
		{"bogus-sort-key", "created_at DESC"},
		{"", "created_at DESC"},
	}

	for _, testCase := range testCases {
		if got := orderClause(testCase.sort); got != testCase.expected {
			t.Errorf("orderClause(%q): expected %q, got %q", testCase.sort, testCase.expected, got)
		}
	}
}

func TestCreateComplaint(t *testing.T) {
	it(func() {
		now := time.Now()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO complaints (violation_type, language, description, location, media_filename)")).
			WithArgs("illegal-dumping", "en", nil, "12.34, 56.78", nil).
			WillReturnResult(sqlmock.NewResult(42, 1))
		mock.ExpectQuery(regexp.QuoteMeta("FROM complaints WHERE id = ?")).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(complaintCols).
				AddRow(42, "illegal-dumping", "en", nil, "12.34, 56.78", nil, "open", 1, 0, now, now))

		s := NewComplaintService(db)
		complaint, err := s.Create(context.Background(), NewComplaint{
			ViolationType: "illegal-dumping",
			Language:      "en",
			Location:      "12.34, 56.78",
		})
		if err != nil {
			t.Fatalf("Create: unexpected error: %v", err)
		}
		if complaint.ID != 42 {
			t.Errorf("Create: expected id 42, got %d", complaint.ID)
		}
		if complaint.Status != "open" {
			t.Errorf("Create: expected status open, got %q", complaint.Status)
		}
		if complaint.ReportsCount != 1 {
			t.Errorf("Create: expected reports_count 1, got %d", complaint.ReportsCount)
		}
		if complaint.Description != nil {
			t.Errorf("Create: expected nil description, got %q", *complaint.Description)
		}
		if complaint.Language == nil || *complaint.Language != "en" {
			t.Errorf("Create: expected language en, got %v", complaint.Language)
		}
	})
}

func TestListExcludesDeleted(t *testing.T) {
	it(func() {
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("FROM complaints WHERE status != 'deleted' ORDER BY created_at DESC")).
			WillReturnRows(sqlmock.NewRows(complaintCols).
				AddRow(2, "water-pollution", nil, "foam on the river", "45.1, 12.9", nil, "in_progress", 1, 0, now, now).
				AddRow(1, "illegal-dumping", "en", nil, "12.34, 56.78", "media-1700000000000-12345.jpg", "open", 1, 1, now.Add(-time.Hour), now))

		s := NewComplaintService(db)
		complaints, err := s.List(context.Background(), SortRecent)
		if err != nil {
			t.Fatalf("List: unexpected error: %v", err)
		}
		if len(complaints) != 2 {
			t.Fatalf("List: expected 2 complaints, got %d", len(complaints))
		}
		if complaints[0].ID != 2 || complaints[1].ID != 1 {
			t.Errorf("List: unexpected order: %d, %d", complaints[0].ID, complaints[1].ID)
		}
		if complaints[1].MediaFilename == nil || *complaints[1].MediaFilename != "media-1700000000000-12345.jpg" {
			t.Errorf("List: unexpected media filename: %v", complaints[1].MediaFilename)
		}
	})
}

func TestListOldestOpenOrdering(t *testing.T) {
	it(func() {
		// The ordering itself is the store's job; assert the clause we hand it.
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY CASE WHEN status = 'open' THEN 0 ELSE 1 END, created_at ASC")).
			WillReturnRows(sqlmock.NewRows(complaintCols))

		s := NewComplaintService(db)
		complaints, err := s.List(context.Background(), SortOldestOpen)
		if err != nil {
			t.Fatalf("List: unexpected error: %v", err)
		}
		if len(complaints) != 0 {
			t.Errorf("List: expected no complaints, got %d", len(complaints))
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("List: unmet expectations: %v", err)
		}
	})
}

func TestUpdateStatus(t *testing.T) {
	it(func() {
		testCases := []struct {
			name         string
			id           int64
			status       string
			rowsAffected int64
			expectedErr  error
		}{
			{
				name:         "existing complaint",
				id:           5,
				status:       "resolved",
				rowsAffected: 1,
				expectedErr:  nil,
			},
			{
				name:         "unknown id",
				id:           9999,
				status:       "in_progress",
				rowsAffected: 0,
				expectedErr:  ErrNotFound,
			},
		}

		s := NewComplaintService(db)
		for _, testCase := range testCases {
			mock.ExpectExec(regexp.QuoteMeta("UPDATE complaints SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?")).
				WithArgs(testCase.status, testCase.id).
				WillReturnResult(sqlmock.NewResult(0, testCase.rowsAffected))

			err := s.UpdateStatus(context.Background(), testCase.id, testCase.status)
			if !errors.Is(err, testCase.expectedErr) {
				t.Errorf("%s: expected error %v, got %v", testCase.name, testCase.expectedErr, err)
			}
		}
	})
}

func TestSoftDelete(t *testing.T) {
	it(func() {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE complaints SET status = 'deleted', updated_at = CURRENT_TIMESTAMP WHERE id = ?")).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := NewComplaintService(db)
		if err := s.SoftDelete(context.Background(), 5); err != nil {
			t.Errorf("SoftDelete: unexpected error: %v", err)
		}
	})

	it(func() {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE complaints SET status = 'deleted', updated_at = CURRENT_TIMESTAMP WHERE id = ?")).
			WithArgs(int64(9999)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		s := NewComplaintService(db)
		if err := s.SoftDelete(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
			t.Errorf("SoftDelete: expected ErrNotFound, got %v", err)
		}
	})
}
