// controllers/relation_controller.go
package controllers

import (
	"strconv"

	"github.com/Atlas60229/forum-express-grading/pkg/resp"
	"github.com/Atlas60229/forum-express-grading/services"
	"github.com/Atlas60229/forum-express-grading/utils"
	"github.com/gin-gonic/gin"
)

// RelationController exposes the edge toggles. Every handler is the
// same shape: param id, acting user from context, one service call.
type RelationController struct {
	svc *services.RelationService
}

func NewRelationController(svc *services.RelationService) *RelationController {
	return &RelationController{svc: svc}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// POST /favorite/:restaurantId
func (rc *RelationController) AddFavorite(c *gin.Context) {
	restaurantID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}
	if err := rc.svc.AddFavorite(utils.CurrentUserID(c), restaurantID); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"favorited": true})
}

// DELETE /favorite/:restaurantId
func (rc *RelationController) RemoveFavorite(c *gin.Context) {
	restaurantID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}
	if err := rc.svc.RemoveFavorite(utils.CurrentUserID(c), restaurantID); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"favorited": false})
}

// POST /like/:restaurantId
func (rc *RelationController) AddLike(c *gin.Context) {
	restaurantID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}
	if err := rc.svc.AddLike(utils.CurrentUserID(c), restaurantID); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"liked": true})
}

// DELETE /like/:restaurantId
func (rc *RelationController) RemoveLike(c *gin.Context) {
	restaurantID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}
	if err := rc.svc.RemoveLike(utils.CurrentUserID(c), restaurantID); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"liked": false})
}

// POST /following/:userId
func (rc *RelationController) AddFollowing(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	if err := rc.svc.AddFollowing(utils.CurrentUserID(c), userID); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"followed": true})
}

// DELETE /following/:userId
func (rc *RelationController) RemoveFollowing(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	if err := rc.svc.RemoveFollowing(utils.CurrentUserID(c), userID); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"followed": false})
}
