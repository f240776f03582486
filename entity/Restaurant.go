package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Tel          string `json:"tel"`
	Address      string `json:"address"`
	OpeningHours string `json:"openingHours"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ViewCounts   uint   `gorm:"not null;default:0" json:"viewCounts"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"category"`

	Comments       []Comment `json:"-"`
	FavoritedUsers []User    `gorm:"many2many:favorites" json:"-"`
	LikedUsers     []User    `gorm:"many2many:likes" json:"-"`
}
