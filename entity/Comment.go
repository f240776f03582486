package entity

import (
	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model
	Text string `gorm:"not null" json:"text"`

	UserID       uint       `gorm:"not null" json:"userId"`
	User         User       `json:"user"`
	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"restaurant"`
}
