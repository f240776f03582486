// repository/favorite_repository.go
package repository

import (
	"github.com/Atlas60229/forum-express-grading/entity"
	"gorm.io/gorm"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) Find(userID, restaurantID uint) (*entity.Favorite, error) {
	var fav entity.Favorite
	err := r.DB.
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&fav).Error
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *FavoriteRepository) Create(fav *entity.Favorite) error {
	return r.DB.Create(fav).Error
}

func (r *FavoriteRepository) Delete(fav *entity.Favorite) error {
	return r.DB.Delete(fav).Error
}

// RestaurantIDsByUser plucks the ids of every restaurant the user has
// favorited, for O(1) membership checks after one query.
func (r *FavoriteRepository) RestaurantIDsByUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("restaurant_id", &ids).Error
	return ids, err
}
