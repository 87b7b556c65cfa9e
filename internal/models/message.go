package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxMessageLength bounds the text of a single message.
const MaxMessageLength = 140

// MessageDB represents a message record in the database
type MessageDB struct {
	MessageID uuid.UUID `json:"id" db:"message_id"`         // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user, required
	Text      string    `json:"text" db:"text"`             // Message body, at most MaxMessageLength chars
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
