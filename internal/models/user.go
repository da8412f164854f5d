package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"id" db:"user_id"`           // Primary key
	Name         string    `json:"name" db:"name"`            // Display name
	Email        string    `json:"email" db:"email"`          // Lowercased login email, unique
	PasswordHash string    `json:"-" db:"password_hash"`      // bcrypt hash
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Registration timestamp (UTC)
}
