package http

import (
	"github.com/gin-gonic/gin"

	"impag-tasks/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Comment
// listing and creation hang off the task resource; deletion addresses
// the comment directly.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/tasks/:id/comments", mw.Auth(), h.ListByTask)
	rg.POST("/tasks/:id/comments", mw.Auth(), h.Add)
	rg.DELETE("/comments/:comment_id", mw.Auth(), h.Delete)
}
