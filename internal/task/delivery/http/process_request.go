package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"impag-tasks/internal/model"
	"impag-tasks/internal/task"
	"impag-tasks/pkg/response"
)

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(response.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want %s", s, response.DateFormat)
	}
	return d, nil
}

// processImportReq binds and validates the bulk import request body.
func (h *handler) processImportReq(c *gin.Context) (task.ImportInput, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.ImportInput{}, err
	}
	return req.toInput(), nil
}

// processCreateReq binds the create request and parses its due date.
func (h *handler) processCreateReq(c *gin.Context) (task.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CreateInput{}, err
	}

	input := task.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    model.Priority(req.Priority),
		CategoryID:  req.CategoryID,
		AssignedTo:  req.AssignedTo,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		d, err := parseDate(*req.DueDate)
		if err != nil {
			return task.CreateInput{}, err
		}
		input.DueDate = &d
	}
	return input, nil
}

// nullableInt64 interprets a raw JSON field three ways: absent leaves
// the target unchanged, null clears it, a number sets it.
func nullableInt64(raw json.RawMessage) (value *int64, clear bool, err error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if string(raw) == "null" {
		return nil, true, nil
	}
	var v int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, err
	}
	return &v, false, nil
}

// processUpdateReq binds the partial update body, resolving nullable
// fields into value-or-clear pairs.
func (h *handler) processUpdateReq(c *gin.Context, id int64) (task.UpdateInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.UpdateInput{}, err
	}

	input := task.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Priority != nil {
		p := model.Priority(*req.Priority)
		input.Priority = &p
	}

	if len(req.DueDate) > 0 {
		if string(req.DueDate) == "null" {
			input.ClearDueDate = true
		} else {
			var s string
			if err := json.Unmarshal(req.DueDate, &s); err != nil {
				return task.UpdateInput{}, errors.New("due_date must be a date string or null")
			}
			d, err := parseDate(s)
			if err != nil {
				return task.UpdateInput{}, err
			}
			input.DueDate = &d
		}
	}

	var err error
	if input.CategoryID, input.ClearCategory, err = nullableInt64(req.CategoryID); err != nil {
		return task.UpdateInput{}, errors.New("category_id must be a number or null")
	}
	if input.AssignedTo, input.ClearAssignee, err = nullableInt64(req.AssignedTo); err != nil {
		return task.UpdateInput{}, errors.New("assigned_to must be a number or null")
	}
	return input, nil
}

// processListReq binds the list query parameters and parses its dates.
func (h *handler) processListReq(c *gin.Context) (task.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return task.ListInput{}, err
	}

	input := task.ListInput{
		Status:     model.Status(req.Status),
		AssignedTo: req.AssignedTo,
		CreatedBy:  req.CreatedBy,
		Priority:   model.Priority(req.Priority),
		Search:     req.Search,
		Skip:       req.Skip,
		Limit:      req.Limit,
	}
	if req.CategoryID != nil {
		if *req.CategoryID == 0 {
			input.Uncategorized = true
		} else {
			input.CategoryID = req.CategoryID
		}
	}
	if req.DueBefore != "" {
		d, err := parseDate(req.DueBefore)
		if err != nil {
			return task.ListInput{}, err
		}
		input.DueBefore = &d
	}
	if req.DueAfter != "" {
		d, err := parseDate(req.DueAfter)
		if err != nil {
			return task.ListInput{}, err
		}
		input.DueAfter = &d
	}
	return input, nil
}
