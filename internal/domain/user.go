package domain

import "time"

// User is an account holder. Each user owns exactly one wallet, created at
// registration.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// NewUser creates a User with the given email and bcrypt password hash.
func NewUser(email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
