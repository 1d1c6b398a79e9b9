package http

import (
	"github.com/gin-gonic/gin"

	"impag-tasks/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// static paths (archive, import, next-number) must be registered in the
// same group as /:id; gin resolves them before the parameter route.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/archive", mw.Auth(), h.ListArchive)
		tasks.POST("/import", mw.Auth(), h.Import)
		tasks.GET("/next-number", mw.Auth(), h.NextNumber)
		tasks.GET("/:id", mw.Auth(), h.Detail)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.PATCH("/:id/status", mw.Auth(), h.UpdateStatus)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
