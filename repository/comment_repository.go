// repository/comment_repository.go
package repository

import (
	"github.com/Atlas60229/forum-express-grading/entity"
	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(comment *entity.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint) (*entity.Comment, error) {
	var comment entity.Comment
	if err := r.DB.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(comment *entity.Comment) error {
	return r.DB.Delete(comment).Error
}

// FindLatest returns the newest comments flattened with author and
// subject restaurant, for the feed.
func (r *CommentRepository) FindLatest(limit int) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := r.DB.
		Preload("User").
		Preload("Restaurant").
		Order("comments.created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// FindByUser returns every comment the user wrote, newest first, with
// the subject restaurant attached.
func (r *CommentRepository) FindByUser(userID uint) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := r.DB.
		Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("comments.created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) CountByRestaurant(restaurantID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Comment{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error
	return count, err
}
