package domain

import "time"

// User holds the password only as a bcrypt hash, never plaintext.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
}
