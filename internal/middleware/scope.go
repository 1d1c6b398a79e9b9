package middleware

import (
	"github.com/gin-gonic/gin"

	"impag-tasks/internal/model"
)

const scopeKey = "x-scope"

func setScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the Scope the auth middleware attached to the
// request. Zero when the route skipped authentication.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
