// services/ranking_service.go
package services

import (
	"sort"

	"github.com/Atlas60229/forum-express-grading/entity"
	"github.com/Atlas60229/forum-express-grading/repository"
)

const defaultTopLimit = 10

// RankingService computes the popularity boards. Collections are
// loaded whole and sorted in memory; the sort is stable so equal
// counts keep the fetch order (primary-key ascending), which makes
// repeated calls over unchanged data return identical output.
//
// The viewer is optional on both boards: with no viewer the
// isFavorited/isFollowed flags stay false.
type RankingService struct {
	restaurantRepo *repository.RestaurantRepository
	userRepo       *repository.UserRepository
	favoriteRepo   *repository.FavoriteRepository
	followshipRepo *repository.FollowshipRepository
}

func NewRankingService(
	restaurantRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
	favoriteRepo *repository.FavoriteRepository,
	followshipRepo *repository.FollowshipRepository,
) *RankingService {
	return &RankingService{
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		favoriteRepo:   favoriteRepo,
		followshipRepo: followshipRepo,
	}
}

type TopRestaurant struct {
	entity.Restaurant
	FavoritedCount int  `json:"favoritedCount"`
	IsFavorited    bool `json:"isFavorited"`
}

type TopUser struct {
	entity.User
	FollowerCount int  `json:"followerCount"`
	IsFollowed    bool `json:"isFollowed"`
}

// TopRestaurants ranks restaurants by favorite count, descending.
// viewerID 0 means no viewer.
func (s *RankingService) TopRestaurants(viewerID uint, limit int) ([]TopRestaurant, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	restaurants, err := s.restaurantRepo.FindAllWithFavoriters()
	if err != nil {
		return nil, err
	}

	viewerFavs := make(map[uint]struct{})
	if viewerID != 0 {
		ids, err := s.favoriteRepo.RestaurantIDsByUser(viewerID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			viewerFavs[id] = struct{}{}
		}
	}

	ranked := make([]TopRestaurant, 0, len(restaurants))
	for _, rest := range restaurants {
		_, favorited := viewerFavs[rest.ID]
		ranked = append(ranked, TopRestaurant{
			Restaurant:     rest,
			FavoritedCount: len(rest.FavoritedUsers),
			IsFavorited:    favorited,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FavoritedCount > ranked[j].FavoritedCount
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// TopUsers ranks users by follower count, descending. viewerID 0 means
// no viewer.
func (s *RankingService) TopUsers(viewerID uint, limit int) ([]TopUser, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	users, err := s.userRepo.FindAllWithFollowers()
	if err != nil {
		return nil, err
	}

	viewerFollowings := make(map[uint]struct{})
	if viewerID != 0 {
		ids, err := s.followshipRepo.FollowingIDsByUser(viewerID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			viewerFollowings[id] = struct{}{}
		}
	}

	ranked := make([]TopUser, 0, len(users))
	for _, user := range users {
		_, followed := viewerFollowings[user.ID]
		ranked = append(ranked, TopUser{
			User:          user,
			FollowerCount: len(user.Followers),
			IsFollowed:    followed,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FollowerCount > ranked[j].FollowerCount
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
