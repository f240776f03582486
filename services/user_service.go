// services/user_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Atlas60229/forum-express-grading/entity"
	"github.com/Atlas60229/forum-express-grading/repository"
	"gorm.io/gorm"
)

// UserService assembles the user profile snapshot and handles profile
// edits.
type UserService struct {
	userRepo    *repository.UserRepository
	commentRepo *repository.CommentRepository
}

func NewUserService(
	userRepo *repository.UserRepository,
	commentRepo *repository.CommentRepository,
) *UserService {
	return &UserService{userRepo: userRepo, commentRepo: commentRepo}
}

// UserProfile merges the user's relation sets with the restaurants
// they commented on. CommentCount counts distinct restaurants, not
// comments written: three comments on one restaurant count once.
type UserProfile struct {
	entity.User
	CommentedRestaurants []entity.Restaurant `json:"commentedRestaurants"`
	CommentCount         int                 `json:"commentCount"`
}

func (s *UserService) Profile(userID uint) (*UserProfile, error) {
	user, err := s.userRepo.FindProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user didn't exist", ErrNotFound)
		}
		return nil, err
	}

	comments, err := s.commentRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	// dedupe by restaurant id, keeping first occurrence of the
	// newest-first comment order
	seen := make(map[uint]struct{})
	commented := make([]entity.Restaurant, 0, len(comments))
	for _, comment := range comments {
		if _, ok := seen[comment.RestaurantID]; ok {
			continue
		}
		seen[comment.RestaurantID] = struct{}{}
		commented = append(commented, comment.Restaurant)
	}

	return &UserProfile{
		User:                 *user,
		CommentedRestaurants: commented,
		CommentCount:         len(commented),
	}, nil
}

// UpdateProfile edits name and image. Name is required; image is kept
// when no new one is supplied.
func (s *UserService) UpdateProfile(userID uint, name, image string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: user name is required", ErrValidation)
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user didn't exist", ErrNotFound)
		}
		return nil, err
	}

	updates := map[string]any{"name": name}
	if image != "" {
		updates["image"] = image
	}
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}
