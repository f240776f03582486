package entity

import (
	"time"
)

// Like is independent of Favorite; a user may hold both edges to the
// same restaurant at once.
type Like struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_likes_user_restaurant" json:"userId"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_likes_user_restaurant" json:"restaurantId"`
	CreatedAt    time.Time `json:"createdAt"`
}
