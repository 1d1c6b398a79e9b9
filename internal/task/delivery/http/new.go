package http

import (
	"github.com/gin-gonic/gin"

	"impag-tasks/internal/comment"
	"impag-tasks/internal/task"
	"impag-tasks/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Import(c *gin.Context)
	NextNumber(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	ListArchive(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	UpdateStatus(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l log.Logger
	// uc owns everything task-shaped; comments is only consulted to
	// enrich the detail view.
	uc       task.UseCase
	comments comment.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, comments comment.UseCase) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		comments: comments,
	}
}
