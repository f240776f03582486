package configs

import (
	"errors"

	"github.com/Atlas60229/forum-express-grading/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the root account once.
func SeedAdmin() error {
	var existing entity.User
	err := db.Where("email = ?", "root@example.com").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&entity.User{
		Name:     "root",
		Email:    "root@example.com",
		Password: string(hashed),
		IsAdmin:  true,
	}).Error
}

// SeedCategories inserts the default category lookups, skipping any
// that already exist.
func SeedCategories() error {
	names := []string{
		"Chinese", "Japanese", "Italian", "Mexican",
		"Vegetarian", "American", "Fusion",
	}
	for _, name := range names {
		var count int64
		if err := db.Model(&entity.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&entity.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
