package http

import (
	"github.com/gin-gonic/gin"

	"impag-tasks/internal/category"
	"impag-tasks/pkg/log"
)

// Handler is the public interface for the category HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc category.UseCase
}

// New creates a new HTTP handler for the category domain.
func New(l log.Logger, uc category.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
