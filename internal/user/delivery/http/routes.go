package http

import (
	"github.com/gin-gonic/gin"

	"impag-tasks/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	users := rg.Group("/users")
	{
		users.GET("", mw.Auth(), h.List)
		users.GET("/me", mw.Auth(), h.Me)
	}
}
