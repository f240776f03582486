// repository/user_repository.go
package repository

import (
	"github.com/Atlas60229/forum-express-grading/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

// FindProfile loads the user with every relation the profile page
// merges into one snapshot.
func (r *UserRepository) FindProfile(id uint) (*entity.User, error) {
	var user entity.User
	err := r.DB.
		Preload("FavoritedRestaurants").
		Preload("LikedRestaurants").
		Preload("Followers").
		Preload("Followings").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAllWithFollowers loads every user with their follower set, for
// the ranking pipeline.
func (r *UserRepository) FindAllWithFollowers() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Preload("Followers").
		Order("users.id").
		Find(&users).Error
	return users, err
}
