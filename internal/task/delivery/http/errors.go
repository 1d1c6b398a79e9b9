package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"impag-tasks/internal/task"
	"impag-tasks/pkg/response"
)

// handleError translates domain errors into HTTP envelopes. Anything
// unrecognized is a storage or programming failure and becomes a 500
// without leaking details.
func (h *handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrNothingParseable),
		errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPriority):
		response.BadRequest(c, err)
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c)
	}
}
