package configs

import (
	"github.com/Atlas60229/forum-express-grading/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() error {
	return Migrate(db)
}

// Migrate registers the edge tables as join models and migrates the
// schema. Shared with the test fixtures, which run on their own DB.
func Migrate(db *gorm.DB) error {
	joins := []struct {
		model any
		field string
		join  any
	}{
		{&entity.User{}, "FavoritedRestaurants", &entity.Favorite{}},
		{&entity.User{}, "LikedRestaurants", &entity.Like{}},
		{&entity.User{}, "Followings", &entity.Followship{}},
		{&entity.User{}, "Followers", &entity.Followship{}},
		{&entity.Restaurant{}, "FavoritedUsers", &entity.Favorite{}},
		{&entity.Restaurant{}, "LikedUsers", &entity.Like{}},
	}
	for _, j := range joins {
		if err := db.SetupJoinTable(j.model, j.field, j.join); err != nil {
			return err
		}
	}

	return db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Restaurant{},
		&entity.Comment{},
		&entity.Favorite{}, &entity.Like{}, &entity.Followship{},
	)
}
