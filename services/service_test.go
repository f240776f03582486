package services

import (
	"testing"
	"time"

	"github.com/Atlas60229/forum-express-grading/configs"
	"github.com/Atlas60229/forum-express-grading/entity"
	"github.com/Atlas60229/forum-express-grading/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// one connection keeps every query on the same in-memory DB
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.Migrate(db))
	return db
}

// fixture wires every repository and service against one fresh DB.
type fixture struct {
	db *gorm.DB

	relations     *RelationService
	ranking       *RankingService
	restaurantSvc *RestaurantService
	userSvc       *UserService
	commentSvc    *CommentService
	authSvc       *AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	restaurantRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followshipRepo := repository.NewFollowshipRepository(db)

	return &fixture{
		db:            db,
		relations:     NewRelationService(restaurantRepo, userRepo, favoriteRepo, likeRepo, followshipRepo),
		ranking:       NewRankingService(restaurantRepo, userRepo, favoriteRepo, followshipRepo),
		restaurantSvc: NewRestaurantService(restaurantRepo, commentRepo),
		userSvc:       NewUserService(userRepo, commentRepo),
		commentSvc:    NewCommentService(commentRepo, restaurantRepo),
		authSvc:       NewAuthService(userRepo, "test-secret", time.Hour),
	}
}

func (f *fixture) createUser(t *testing.T, name string) entity.User {
	t.Helper()
	user := entity.User{Name: name, Email: name + "@example.com", Password: "hashed"}
	require.NoError(t, f.db.Create(&user).Error)
	return user
}

func (f *fixture) createCategory(t *testing.T, name string) entity.Category {
	t.Helper()
	category := entity.Category{Name: name}
	require.NoError(t, f.db.Create(&category).Error)
	return category
}

func (f *fixture) createRestaurant(t *testing.T, name string, categoryID uint) entity.Restaurant {
	t.Helper()
	rest := entity.Restaurant{Name: name, CategoryID: categoryID}
	require.NoError(t, f.db.Create(&rest).Error)
	return rest
}

func (f *fixture) createRestaurantAt(t *testing.T, name string, categoryID uint, at time.Time) entity.Restaurant {
	t.Helper()
	rest := entity.Restaurant{Name: name, CategoryID: categoryID}
	rest.CreatedAt = at
	require.NoError(t, f.db.Create(&rest).Error)
	return rest
}

func (f *fixture) createCommentAt(t *testing.T, userID, restaurantID uint, text string, at time.Time) entity.Comment {
	t.Helper()
	comment := entity.Comment{Text: text, UserID: userID, RestaurantID: restaurantID}
	comment.CreatedAt = at
	require.NoError(t, f.db.Create(&comment).Error)
	return comment
}
