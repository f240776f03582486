// services/relation_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/Atlas60229/forum-express-grading/entity"
	"github.com/Atlas60229/forum-express-grading/repository"
	"gorm.io/gorm"
)

// RelationService toggles the favorite/like/follow edges. Add and
// remove are deliberately asymmetric: adding an edge that exists fails
// with ErrDuplicateRelation, removing one that doesn't fails with
// ErrNotFound. The existence check and the write are two queries with
// no wrapping transaction; the unique index on each edge table is the
// backstop if the same user races itself.
type RelationService struct {
	restaurantRepo *repository.RestaurantRepository
	userRepo       *repository.UserRepository
	favoriteRepo   *repository.FavoriteRepository
	likeRepo       *repository.LikeRepository
	followshipRepo *repository.FollowshipRepository
}

func NewRelationService(
	restaurantRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
	favoriteRepo *repository.FavoriteRepository,
	likeRepo *repository.LikeRepository,
	followshipRepo *repository.FollowshipRepository,
) *RelationService {
	return &RelationService{
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		favoriteRepo:   favoriteRepo,
		likeRepo:       likeRepo,
		followshipRepo: followshipRepo,
	}
}

func (s *RelationService) AddFavorite(userID, restaurantID uint) error {
	if _, err := s.restaurantRepo.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: restaurant didn't exist", ErrNotFound)
		}
		return err
	}

	_, err := s.favoriteRepo.Find(userID, restaurantID)
	if err == nil {
		return fmt.Errorf("%w: you have favorited this restaurant", ErrDuplicateRelation)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.favoriteRepo.Create(&entity.Favorite{
		UserID:       userID,
		RestaurantID: restaurantID,
	})
}

func (s *RelationService) RemoveFavorite(userID, restaurantID uint) error {
	fav, err := s.favoriteRepo.Find(userID, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: you haven't favorited this restaurant", ErrNotFound)
		}
		return err
	}
	return s.favoriteRepo.Delete(fav)
}

func (s *RelationService) AddLike(userID, restaurantID uint) error {
	if _, err := s.restaurantRepo.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: restaurant didn't exist", ErrNotFound)
		}
		return err
	}

	_, err := s.likeRepo.Find(userID, restaurantID)
	if err == nil {
		return fmt.Errorf("%w: you have liked this restaurant", ErrDuplicateRelation)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.likeRepo.Create(&entity.Like{
		UserID:       userID,
		RestaurantID: restaurantID,
	})
}

func (s *RelationService) RemoveLike(userID, restaurantID uint) error {
	like, err := s.likeRepo.Find(userID, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: you haven't liked this restaurant", ErrNotFound)
		}
		return err
	}
	return s.likeRepo.Delete(like)
}

func (s *RelationService) AddFollowing(followerID, followingID uint) error {
	if followerID == followingID {
		return fmt.Errorf("%w: cannot follow yourself", ErrValidation)
	}

	if _, err := s.userRepo.FindByID(followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user didn't exist", ErrNotFound)
		}
		return err
	}

	_, err := s.followshipRepo.Find(followerID, followingID)
	if err == nil {
		return fmt.Errorf("%w: you are already following this user", ErrDuplicateRelation)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.followshipRepo.Create(&entity.Followship{
		FollowerID:  followerID,
		FollowingID: followingID,
	})
}

func (s *RelationService) RemoveFollowing(followerID, followingID uint) error {
	fs, err := s.followshipRepo.Find(followerID, followingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: you haven't followed this user", ErrNotFound)
		}
		return err
	}
	return s.followshipRepo.Delete(fs)
}
