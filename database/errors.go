package database

import "errors"

// Sentinel errors returned by the database services. Handlers map them to
// HTTP status codes once, at the request boundary.
var (
	// ErrEmailTaken is returned when a signup hits the unique email constraint.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong password,
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned when an operation targets a nonexistent row.
	ErrNotFound = errors.New("not found")
)
