// repository/followship_repository.go
package repository

import (
	"github.com/Atlas60229/forum-express-grading/entity"
	"gorm.io/gorm"
)

type FollowshipRepository struct {
	DB *gorm.DB
}

func NewFollowshipRepository(db *gorm.DB) *FollowshipRepository {
	return &FollowshipRepository{DB: db}
}

func (r *FollowshipRepository) Find(followerID, followingID uint) (*entity.Followship, error) {
	var fs entity.Followship
	err := r.DB.
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&fs).Error
	if err != nil {
		return nil, err
	}
	return &fs, nil
}

func (r *FollowshipRepository) Create(fs *entity.Followship) error {
	return r.DB.Create(fs).Error
}

func (r *FollowshipRepository) Delete(fs *entity.Followship) error {
	return r.DB.Delete(fs).Error
}

// FollowingIDsByUser plucks the ids of every user the follower is
// following.
func (r *FollowshipRepository) FollowingIDsByUser(followerID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.Followship{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	return ids, err
}
