package models

import "time"

// Link url bounds.
const LinkURLMaxLen = 2048

// LinkDB represents a link row in the database
type LinkDB struct {
	LinkID       int64     `json:"id" db:"link_id"`                 // Primary key
	UserID       int64     `json:"-" db:"user_id"`                  // Owner
	CollectionID int64     `json:"collectionId" db:"collection_id"` // Containing collection
	CategoryID   *int64    `json:"categoryId" db:"category_id"`     // Optional category
	URL          string    `json:"url" db:"url"`                    // Bookmarked address
	Title        *string   `json:"title" db:"title"`                // Optional title
	Description  *string   `json:"description" db:"description"`    // Optional description
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`       // Creation timestamp (UTC)
}

// LinkInput carries the mutable fields of a link after normalization.
type LinkInput struct {
	URL         string
	Title       *string
	Description *string
	CategoryID  *int64
}

// LinkFilter narrows a link listing to one collection and, optionally, one category.
type LinkFilter struct {
	CollectionID int64
	CategoryID   *int64
}
