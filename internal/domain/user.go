package domain

import "time"

// User represents a registered account in the system.
// The password is stored as a bcrypt hash, never in plain text.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
