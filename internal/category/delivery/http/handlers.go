package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"impag-tasks/internal/category"
	"impag-tasks/internal/middleware"
	"impag-tasks/pkg/response"
)

// Create godoc
// @Summary     Create a category
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Category data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/categories [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	created, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, newCategoryResp(created), "category created")
}

// List godoc
// @Summary     List categories
// @Tags        Categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp
// @Router      /api/categories [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	categories, err := h.uc.List(ctx, sc)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, newListResp(categories))
}

// Update godoc
// @Summary     Update a category
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int       true "Category ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/categories/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, errors.New("invalid category id"))
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	req.ID = id

	updated, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, newCategoryResp(updated))
}

// Delete godoc
// @Summary     Delete a category
// @Description Soft-deletes a category; existing tasks keep the reference.
// @Tags        Categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/categories/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, errors.New("invalid category id"))
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OKWithMessage(c, nil, "category deleted")
}

func (h *handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, category.ErrNameRequired):
		response.BadRequest(c, err)
	case errors.Is(err, category.ErrCategoryNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c)
	}
}
