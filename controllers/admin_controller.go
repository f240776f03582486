// controllers/admin_controller.go
package controllers

import (
	"github.com/Atlas60229/forum-express-grading/pkg/resp"
	"github.com/Atlas60229/forum-express-grading/services"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	restaurantSvc *services.RestaurantService
	commentSvc    *services.CommentService
}

func NewAdminController(restaurantSvc *services.RestaurantService, commentSvc *services.CommentService) *AdminController {
	return &AdminController{restaurantSvc: restaurantSvc, commentSvc: commentSvc}
}

// GET /admin/restaurants
func (ac *AdminController) Restaurants(c *gin.Context) {
	rests, err := ac.restaurantSvc.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": rests})
}

// DELETE /admin/comments/:id
func (ac *AdminController) DeleteComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ac.commentSvc.Delete(id); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
