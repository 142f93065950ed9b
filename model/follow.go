package models

import (
	"time"

	"github.com/google/uuid"
)

type Follow struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FollowerID  uuid.UUID `json:"follower_id" db:"follower_id"`   // User who is following
	FollowingID uuid.UUID `json:"following_id" db:"following_id"` // User being followed
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type UserFollowCounts struct {
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	FollowersCount int32     `json:"followers_count" db:"followers_count"`
	FollowingCount int32     `json:"following_count" db:"following_count"`
}
