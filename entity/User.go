package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Image    string `json:"image"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"isAdmin"`

	// Relations — preload only when the read path needs them
	Comments             []Comment    `json:"-"`
	FavoritedRestaurants []Restaurant `gorm:"many2many:favorites" json:"-"`
	LikedRestaurants     []Restaurant `gorm:"many2many:likes" json:"-"`

	// followships is directed: follower -> following
	Followings []User `gorm:"many2many:followships;joinForeignKey:FollowerID;joinReferences:FollowingID" json:"-"`
	Followers  []User `gorm:"many2many:followships;joinForeignKey:FollowingID;joinReferences:FollowerID" json:"-"`
}
