// Package models holds the server-side persistence models.
package models

import "time"

// User is a registered account. Email is stored lowercased and is unique;
// PasswordHash is a bcrypt hash and never leaves the server.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
