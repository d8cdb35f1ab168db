// Package models defines server-side data models persisted in the database.
// Nullable columns are represented as pointers so that JSON responses carry
// explicit nulls rather than zero values.
package models

import "time"

// Profile is an authenticated identity. Username is unique; the match on
// login is case-sensitive. PasswordHash holds a bcrypt hash, though rows
// seeded before the hash migration may still contain plaintext (see
// services.UserService).
type Profile struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
