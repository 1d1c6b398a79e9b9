package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"impag-tasks/internal/middleware"
	"impag-tasks/internal/model"
	"impag-tasks/pkg/response"
)

func taskID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.New("invalid task id")
	}
	return id, nil
}

// Import godoc
// @Summary     Bulk import tasks from pasted text
// @Description Parses free-form pasted text (one task per line), detects duplicates against active tasks, and creates the rest with conflict-free numbers. The whole batch succeeds or nothing is created.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body importReq true "Raw text and optional default assignee"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Empty or unparseable input"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	input, err := h.processImportReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.Import(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, newImportResp(out))
}

// NextNumber godoc
// @Summary     Preview the next free task number
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Router      /api/tasks/next-number [GET]
func (h *handler) NextNumber(c *gin.Context) {
	ctx := c.Request.Context()

	next, err := h.uc.NextNumber(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.NextNumber: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, nextNumberResp{NextNumber: next})
}

// Create godoc
// @Summary     Create a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	input, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	created, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.handleError(c, err)
		return
	}

	response.Created(c, newTaskResp(created), "task created")
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks matching the filters. Archived tasks are excluded unless status=archived is requested.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       status      query string false "Filter by status"
// @Param       assigned_to query int    false "Filter by assignee"
// @Param       priority    query string false "Filter by priority"
// @Param       category_id query int    false "Filter by category (0 = uncategorized)"
// @Param       search      query string false "Search in title and description"
// @Success     200 {object} response.Resp
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	input, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	tasks, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, newTaskListResp(tasks))
}

// ListArchive godoc
// @Summary     List recently archived tasks
// @Description Returns tasks archived within the last 30 days.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Router      /api/tasks/archive [GET]
func (h *handler) ListArchive(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	tasks, err := h.uc.ListArchive(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListArchive: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, newTaskListResp(tasks))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task with its comments.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id, err := taskID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	t, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.handleError(c, err)
		return
	}

	comments, err := h.comments.ListByTask(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "comments.ListByTask: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, newDetailResp(t, comments))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update of task fields. Send null to clear due_date, category_id, or assigned_to.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id, err := taskID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	input, err := h.processUpdateReq(c, id)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	updated, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// UpdateStatus godoc
// @Summary     Change a task's status
// @Description Moving to done stamps completion; archiving releases the task number; un-archiving assigns a fresh one.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int       true "Task ID"
// @Param       body body statusReq true "New status"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id, err := taskID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	updated, err := h.uc.UpdateStatus(ctx, sc, id, model.Status(req.Status))
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Delete godoc
// @Summary     Delete a task
// @Description Archives the task. Nothing is removed from storage.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id, err := taskID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.handleError(c, err)
		return
	}

	response.OKWithMessage(c, nil, "task archived")
}
