// Package domain defines the core entities shared by the service and store
// layers.
package domain

import "time"

// User is a registered account. PasswordHash is the PHC-encoded argon2id
// hash and never leaves the server.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ModuleCompletion records that a user finished a catalog module.
type ModuleCompletion struct {
	UserID      int64
	ModuleID    string
	CompletedAt time.Time
}
