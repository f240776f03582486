package entity

import (
	"time"
)

// Followship is a directed edge: follower -> following. At most one
// edge per ordered pair.
type Followship struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_followships_pair" json:"followerId"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_followships_pair" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}
