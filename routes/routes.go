package routes

import (
	"github.com/Atlas60229/forum-express-grading/configs"
	"github.com/Atlas60229/forum-express-grading/controllers"
	"github.com/Atlas60229/forum-express-grading/middlewares"
	"github.com/Atlas60229/forum-express-grading/repository"
	"github.com/Atlas60229/forum-express-grading/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followshipRepo := repository.NewFollowshipRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restaurantSvc := services.NewRestaurantService(restaurantRepo, commentRepo)
	userSvc := services.NewUserService(userRepo, commentRepo)
	commentSvc := services.NewCommentService(commentRepo, restaurantRepo)
	relationSvc := services.NewRelationService(restaurantRepo, userRepo, favoriteRepo, likeRepo, followshipRepo)
	rankingSvc := services.NewRankingService(restaurantRepo, userRepo, favoriteRepo, followshipRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restaurantSvc, rankingSvc)
	userCtrl := controllers.NewUserController(userSvc, rankingSvc)
	relCtrl := controllers.NewRelationController(relationSvc)
	commentCtrl := controllers.NewCommentController(commentSvc)
	adminCtrl := controllers.NewAdminController(restaurantSvc, commentSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Everything below requires a logged-in user
	auth := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		// static segments before :id
		auth.GET("/restaurants", restCtrl.List)
		auth.GET("/restaurants/feeds", restCtrl.Feeds)
		auth.GET("/restaurants/top", restCtrl.Top)
		auth.GET("/restaurants/:id", restCtrl.Detail)
		auth.GET("/restaurants/:id/dashboard", restCtrl.Dashboard)

		auth.GET("/users/top", userCtrl.Top)
		auth.GET("/users/:id", userCtrl.Profile)
		auth.PUT("/users/:id", userCtrl.Update)

		auth.POST("/comments", commentCtrl.Create)

		auth.POST("/favorite/:restaurantId", relCtrl.AddFavorite)
		auth.DELETE("/favorite/:restaurantId", relCtrl.RemoveFavorite)
		auth.POST("/like/:restaurantId", relCtrl.AddLike)
		auth.DELETE("/like/:restaurantId", relCtrl.RemoveLike)
		auth.POST("/following/:userId", relCtrl.AddFollowing)
		auth.DELETE("/following/:userId", relCtrl.RemoveFollowing)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret), middlewares.AdminOnly())
	{
		admin.GET("/restaurants", adminCtrl.Restaurants)
		admin.DELETE("/comments/:id", adminCtrl.DeleteComment)
	}
}
