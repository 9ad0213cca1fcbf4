package models

import (
	"time"
)

// Follow is an accepted follow edge: the follower appears in the
// following user's followers list and vice versa.
type Follow struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	FollowerUserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_follower_following" json:"follower_user_id"`
	FollowingUserID string    `gorm:"type:uuid;not null;uniqueIndex:idx_follower_following" json:"following_user_id"`
}
