// repository/like_repository.go
package repository

import (
	"github.com/Atlas60229/forum-express-grading/entity"
	"gorm.io/gorm"
)

type LikeRepository struct {
	DB *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{DB: db}
}

func (r *LikeRepository) Find(userID, restaurantID uint) (*entity.Like, error) {
	var like entity.Like
	err := r.DB.
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *LikeRepository) Create(like *entity.Like) error {
	return r.DB.Create(like).Error
}

func (r *LikeRepository) Delete(like *entity.Like) error {
	return r.DB.Delete(like).Error
}
