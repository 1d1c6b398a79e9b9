package http

import (
	"github.com/gin-gonic/gin"

	"impag-tasks/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	categories := rg.Group("/categories")
	{
		categories.POST("", mw.Auth(), h.Create)
		categories.GET("", mw.Auth(), h.List)
		categories.PUT("/:id", mw.Auth(), h.Update)
		categories.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
