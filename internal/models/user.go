package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultImageURL is applied at signup when no profile image is given.
const DefaultImageURL = "/static/images/default-pic.png"

// UserDB represents a user record in the database
type UserDB struct {
	UserID         uuid.UUID `json:"id" db:"user_id"`                        // Primary key
	Username       string    `json:"username" db:"username"`                 // Unique username
	Email          string    `json:"email" db:"email"`                       // Unique email
	PasswordHash   string    `json:"-" db:"password_hash"`                   // bcrypt hash, never serialized
	ImageURL       string    `json:"image_url" db:"image_url"`               // Profile image
	HeaderImageURL string    `json:"header_image_url" db:"header_image_url"` // Profile header image
	Bio            string    `json:"bio" db:"bio"`                           // Short bio text
	Location       string    `json:"location" db:"location"`                 // Free-form location
	CreatedAt      time.Time `json:"created_at" db:"created_at"`             // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`             // Last update timestamp
}
