package domain

import "time"

// User is the domain model for account holders. IsAdmin grants access to
// cross-user listings; IsActive marks whether the account may log in.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
