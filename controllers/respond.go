package controllers

import (
	"errors"

	"github.com/Atlas60229/forum-express-grading/pkg/resp"
	"github.com/Atlas60229/forum-express-grading/services"
	"github.com/gin-gonic/gin"
)

// respondErr maps the service error taxonomy onto HTTP statuses. The
// services never see HTTP; this is the only translation point.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDuplicateRelation):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUnauthenticated):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
