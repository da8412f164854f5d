package models

import "time"

// Collection name bounds.
const CollectionNameMaxLen = 120

// CollectionDB represents a collection row in the database
type CollectionDB struct {
	CollectionID int64     `json:"id" db:"collection_id"`     // Primary key
	UserID       int64     `json:"-" db:"user_id"`            // Owner
	Name         string    `json:"name" db:"name"`            // Unique per owner
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp (UTC)
}
