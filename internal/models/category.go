package models

import "time"

// Category name bounds.
const CategoryNameMaxLen = 80

// CategoryDB represents a category row in the database
type CategoryDB struct {
	CategoryID int64     `json:"id" db:"category_id"`       // Primary key
	UserID     int64     `json:"-" db:"user_id"`            // Owner
	Name       string    `json:"name" db:"name"`            // Unique per owner
	CreatedAt  time.Time `json:"createdAt" db:"created_at"` // Creation timestamp (UTC)
}
