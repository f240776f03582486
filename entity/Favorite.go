package entity

import (
	"time"
)

// Favorite is the join row between a user and a favorited restaurant.
// The (user, restaurant) pair is unique; no soft delete so a removed
// edge can be recreated.
type Favorite struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_favorites_user_restaurant" json:"userId"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_favorites_user_restaurant" json:"restaurantId"`
	CreatedAt    time.Time `json:"createdAt"`
}
