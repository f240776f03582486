// controllers/comment_controller.go
package controllers

import (
	"github.com/Atlas60229/forum-express-grading/pkg/resp"
	"github.com/Atlas60229/forum-express-grading/services"
	"github.com/Atlas60229/forum-express-grading/utils"
	"github.com/gin-gonic/gin"
)

type CommentController struct {
	svc *services.CommentService
}

func NewCommentController(svc *services.CommentService) *CommentController {
	return &CommentController{svc: svc}
}

type CreateCommentRequest struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Text         string `json:"text" binding:"required"`
}

// POST /comments
func (cc *CommentController) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	comment, err := cc.svc.Create(utils.CurrentUserID(c), req.RestaurantID, req.Text)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, comment)
}
