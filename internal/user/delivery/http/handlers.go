package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"impag-tasks/internal/middleware"
	"impag-tasks/internal/user"
	"impag-tasks/pkg/response"
)

// List godoc
// @Summary     List users
// @Description Returns all active users, for assignee pickers.
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	users, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newListResp(users))
}

// Me godoc
// @Summary     Current user
// @Description Returns the authenticated caller's profile.
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/users/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	u, err := h.uc.Me(ctx, sc)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newUserResp(u))
}
