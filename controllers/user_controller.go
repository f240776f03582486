// controllers/user_controller.go
package controllers

import (
	"strconv"

	"github.com/Atlas60229/forum-express-grading/pkg/resp"
	"github.com/Atlas60229/forum-express-grading/services"
	"github.com/Atlas60229/forum-express-grading/utils"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	svc     *services.UserService
	ranking *services.RankingService
}

func NewUserController(svc *services.UserService, ranking *services.RankingService) *UserController {
	return &UserController{svc: svc, ranking: ranking}
}

type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

// GET /users/top
func (uc *UserController) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	ranked, err := uc.ranking.TopUsers(utils.CurrentUserID(c), limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"users": ranked})
}

// GET /users/:id
func (uc *UserController) Profile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	profile, err := uc.svc.Profile(uint(id))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, profile)
}

// PUT /users/:id — owner only
func (uc *UserController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	if utils.CurrentUserID(c) != uint(id) {
		resp.Forbidden(c, "cannot edit another user's profile")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := uc.svc.UpdateProfile(uint(id), req.Name, req.Image)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, user)
}
