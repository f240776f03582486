// services/restaurant_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/Atlas60229/forum-express-grading/entity"
	"github.com/Atlas60229/forum-express-grading/repository"
	"gorm.io/gorm"
)

// RestaurantService assembles the restaurant read models: list,
// detail, dashboard and feed. Each read returns its own typed
// snapshot.
type RestaurantService struct {
	restaurantRepo *repository.RestaurantRepository
	commentRepo    *repository.CommentRepository
}

func NewRestaurantService(
	restaurantRepo *repository.RestaurantRepository,
	commentRepo *repository.CommentRepository,
) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		commentRepo:    commentRepo,
	}
}

// RestaurantDetail is the detail-page snapshot: the restaurant with
// category, ordered comments and both edge sets, plus the viewer's
// own flags.
type RestaurantDetail struct {
	entity.Restaurant
	IsFavorited bool `json:"isFavorited"`
	IsLiked     bool `json:"isLiked"`
}

// DashboardRow is the flat management summary. No nesting, no side
// effects.
type DashboardRow struct {
	RestaurantID uint   `json:"restaurantId"`
	Name         string `json:"name"`
	CategoryName string `json:"categoryName"`
	ViewCounts   uint   `json:"viewCounts"`
	CommentCount int64  `json:"commentCount"`
}

// Feed pairs the newest restaurants and newest comments. The two
// lists are independent queries; neither filters the other.
type Feed struct {
	Restaurants []entity.Restaurant `json:"restaurants"`
	Comments    []entity.Comment    `json:"comments"`
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.restaurantRepo.FindAll()
}

func (s *RestaurantService) ListByCategory(categoryID uint) ([]entity.Restaurant, error) {
	if categoryID == 0 {
		return s.restaurantRepo.FindAll()
	}
	return s.restaurantRepo.FindAllByCategory(categoryID)
}

// Detail returns the merged snapshot and bumps the view counter by
// exactly one. The increment happens after existence is confirmed and
// the returned snapshot carries the post-increment value. viewerID 0
// means no viewer; both flags stay false.
func (s *RestaurantService) Detail(id, viewerID uint) (*RestaurantDetail, error) {
	rest, err := s.restaurantRepo.FindDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: restaurant didn't exist", ErrNotFound)
		}
		return nil, err
	}

	viewCounts, err := s.restaurantRepo.IncrementViewCounts(id)
	if err != nil {
		return nil, err
	}
	rest.ViewCounts = viewCounts

	detail := &RestaurantDetail{Restaurant: *rest}
	if viewerID != 0 {
		for _, u := range rest.FavoritedUsers {
			if u.ID == viewerID {
				detail.IsFavorited = true
				break
			}
		}
		for _, u := range rest.LikedUsers {
			if u.ID == viewerID {
				detail.IsLiked = true
				break
			}
		}
	}
	return detail, nil
}

func (s *RestaurantService) Dashboard(id uint) (*DashboardRow, error) {
	rest, err := s.restaurantRepo.FindWithCategory(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: restaurant didn't exist", ErrNotFound)
		}
		return nil, err
	}

	commentCount, err := s.commentRepo.CountByRestaurant(id)
	if err != nil {
		return nil, err
	}

	return &DashboardRow{
		RestaurantID: rest.ID,
		Name:         rest.Name,
		CategoryName: rest.Category.Name,
		ViewCounts:   rest.ViewCounts,
		CommentCount: commentCount,
	}, nil
}

func (s *RestaurantService) Feeds(limit int) (*Feed, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	restaurants, err := s.restaurantRepo.FindLatest(limit)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.FindLatest(limit)
	if err != nil {
		return nil, err
	}

	return &Feed{Restaurants: restaurants, Comments: comments}, nil
}
