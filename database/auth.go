package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"

	"green-justice/models"
)

// MySQL error number for a duplicate entry on a unique key.
const mysqlErrDuplicateEntry = 1062

// AuthService handles authority account registration and credential checks.
type AuthService struct {
	db *sql.DB
}

// NewAuthService creates a new authentication service instance.
func NewAuthService(db *sql.DB) *AuthService {
	return &AuthService{db: db}
}

// Signup creates an authority account with a bcrypt-hashed password. A hit on
// the unique email constraint surfaces as ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*models.Authority, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO authorities (name, email, password_hash) VALUES (?, ?, ?)",
		name, email, string(hash))
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert authority: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get authority id: %w", err)
	}

	return &models.Authority{ID: id, Name: name, Email: email}, nil
}

// Login verifies credentials by exact email match. An unknown email and a
// wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Authority, error) {
	var (
		authority models.Authority
		hash      string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash FROM authorities WHERE email = ?",
		email).Scan(&authority.ID, &authority.Name, &authority.Email, &hash)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query authority: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		log.Infof("Password mismatch for authority %d", authority.ID)
		return nil, ErrInvalidCredentials
	}

	return &authority, nil
}
