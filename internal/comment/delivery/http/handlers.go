package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"impag-tasks/internal/comment"
	"impag-tasks/internal/middleware"
	"impag-tasks/pkg/response"
)

type addReq struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// ListByTask godoc
// @Summary     List comments on a task
// @Tags        Comments
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp
// @Router      /api/tasks/{id}/comments [GET]
func (h *handler) ListByTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, errors.New("invalid task id"))
		return
	}

	comments, err := h.uc.ListByTask(ctx, sc, taskID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, newListResp(comments))
}

// Add godoc
// @Summary     Add a comment to a task
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int    true "Task ID"
// @Param       body body addReq true "Comment content"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/tasks/{id}/comments [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, errors.New("invalid task id"))
		return
	}

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	created, err := h.uc.Add(ctx, sc, comment.AddInput{TaskID: taskID, Content: req.Content})
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, newCommentResp(created), "comment added")
}

// Delete godoc
// @Summary     Delete a comment
// @Tags        Comments
// @Produce     json
// @Security    BearerAuth
// @Param       comment_id path int true "Comment ID"
// @Success     200 {object} response.Resp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/comments/{comment_id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, errors.New("invalid comment id"))
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OKWithMessage(c, nil, "comment deleted")
}

func (h *handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, comment.ErrContentRequired):
		response.BadRequest(c, err)
	case errors.Is(err, comment.ErrCommentNotFound):
		response.NotFound(c, err)
	case errors.Is(err, comment.ErrNotAuthor):
		response.Forbidden(c, err.Error())
	default:
		response.InternalError(c)
	}
}
