package models

import (
	"time"

	"github.com/google/uuid"
)

// FollowDB represents a directed follow edge between two users.
// (follower_id, followed_id) is the composite primary key, so a given
// pair can appear at most once and following is not symmetric.
type FollowDB struct {
	FollowerID uuid.UUID `json:"follower_id" db:"follower_id"` // User doing the following
	FollowedID uuid.UUID `json:"followed_id" db:"followed_id"` // User being followed
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Edge creation timestamp
}
