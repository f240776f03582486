// controllers/restaurant_controller.go
package controllers

import (
	"strconv"

	"github.com/Atlas60229/forum-express-grading/pkg/resp"
	"github.com/Atlas60229/forum-express-grading/services"
	"github.com/Atlas60229/forum-express-grading/utils"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	svc     *services.RestaurantService
	ranking *services.RankingService
}

func NewRestaurantController(svc *services.RestaurantService, ranking *services.RankingService) *RestaurantController {
	return &RestaurantController{svc: svc, ranking: ranking}
}

// GET /restaurants?categoryId=
func (rc *RestaurantController) List(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.DefaultQuery("categoryId", "0"))

	rests, err := rc.svc.ListByCategory(uint(categoryID))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": rests})
}

// GET /restaurants/feeds
func (rc *RestaurantController) Feeds(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	feed, err := rc.svc.Feeds(limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, feed)
}

// GET /restaurants/top
func (rc *RestaurantController) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	ranked, err := rc.ranking.TopRestaurants(utils.CurrentUserID(c), limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": ranked})
}

// GET /restaurants/:id — the one read path with a side effect: the
// view counter goes up by one.
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	detail, err := rc.svc.Detail(uint(id), utils.CurrentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, detail)
}

// GET /restaurants/:id/dashboard
func (rc *RestaurantController) Dashboard(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	row, err := rc.svc.Dashboard(uint(id))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, row)
}
