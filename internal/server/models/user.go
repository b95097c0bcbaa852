// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account row. PasswordHash is an argon2id digest of the
// password under PasswordSalt.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	PasswordSalt []byte
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
