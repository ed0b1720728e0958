package database

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jknair0/beforeeach"
	"golang.org/x/crypto/bcrypt"
)

var (
	db   *sql.DB
	mock sqlmock.Sqlmock
)

func setUp() {
	db, mock, _ = sqlmock.New()
}

func tearDown() {
	db.Close()
}

var it = beforeeach.Create(setUp, tearDown)

func TestSignup(t *testing.T) {
	it(func() {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO authorities (name, email, password_hash) VALUES (?, ?, ?)")).
			WithArgs("Ada Inspector", "ada@ecocity.gov", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(3, 1))

		s := NewAuthService(db)
		authority, err := s.Signup(context.Background(), "Ada Inspector", "ada@ecocity.gov", "hunter22hunter22")
		if err != nil {
			t.Fatalf("Signup: unexpected error: %v", err)
		}
		if authority.ID != 3 {
			t.Errorf("Signup: expected id 3, got %d", authority.ID)
		}
		if authority.Name != "Ada Inspector" || authority.Email != "ada@ecocity.gov" {
			t.Errorf("Signup: unexpected authority %+v", authority)
		}
	})
}

func TestSignupDuplicateEmail(t *testing.T) {
	it(func() {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO authorities")).
			WithArgs("Ada Inspector", "ada@ecocity.gov", sqlmock.AnyArg()).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'ada@ecocity.gov' for key 'email'"})

		s := NewAuthService(db)
		_, err := s.Signup(context.Background(), "Ada Inspector", "ada@ecocity.gov", "hunter22hunter22")
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("Signup: expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	authorityRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}).
			AddRow(7, "Ada Inspector", "ada@ecocity.gov", string(hash))
	}
	selectAuthority := regexp.QuoteMeta("SELECT id, name, email, password_hash FROM authorities WHERE email = ?")

	it(func() {
		mock.ExpectQuery(selectAuthority).WithArgs("ada@ecocity.gov").WillReturnRows(authorityRow())

		s := NewAuthService(db)
		authority, err := s.Login(context.Background(), "ada@ecocity.gov", "correct-password")
		if err != nil {
			t.Fatalf("Login: unexpected error: %v", err)
		}
		if authority.ID != 7 || authority.Email != "ada@ecocity.gov" {
			t.Errorf("Login: unexpected authority %+v", authority)
		}
	})

	it(func() {
		mock.ExpectQuery(selectAuthority).WithArgs("ada@ecocity.gov").WillReturnRows(authorityRow())

		s := NewAuthService(db)
		_, err := s.Login(context.Background(), "ada@ecocity.gov", "wrong-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login with wrong password: expected ErrInvalidCredentials, got %v", err)
		}
	})

	it(func() {
		mock.ExpectQuery(selectAuthority).WithArgs("nobody@ecocity.gov").WillReturnError(sql.ErrNoRows)

		s := NewAuthService(db)
		_, err := s.Login(context.Background(), "nobody@ecocity.gov", "correct-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login with unknown email: expected ErrInvalidCredentials, got %v", err)
		}
	})
}
