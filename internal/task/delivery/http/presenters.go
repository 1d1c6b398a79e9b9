package http

import (
	"encoding/json"

	"impag-tasks/internal/model"
	"impag-tasks/internal/task"
	"impag-tasks/pkg/response"
)

// --- Request DTOs ---

type importReq struct {
	Text       string `json:"text" binding:"required"`
	AssignedTo *int64 `json:"assigned_to"`
}

func (r importReq) toInput() task.ImportInput {
	return task.ImportInput{
		RawText:    r.Text,
		AssignedTo: r.AssignedTo,
	}
}

type createReq struct {
	Title       string  `json:"title" binding:"required,min=1,max=500"`
	Description string  `json:"description" binding:"max=5000"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *string `json:"due_date"`
	CategoryID  *int64  `json:"category_id"`
	AssignedTo  *int64  `json:"assigned_to"`
}

type updateReq struct {
	ID          int64   `json:"-"`
	Title       *string `json:"title" binding:"omitempty,min=1,max=500"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	// DueDate, CategoryID, AssignedTo distinguish absent from null: a
	// present null clears the field.
	DueDate    json.RawMessage `json:"due_date"`
	CategoryID json.RawMessage `json:"category_id"`
	AssignedTo json.RawMessage `json:"assigned_to"`
}

type statusReq struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress done archived"`
}

type listReq struct {
	Status     string `form:"status"`
	AssignedTo *int64 `form:"assigned_to"`
	CreatedBy  *int64 `form:"created_by"`
	Priority   string `form:"priority"`
	CategoryID *int64 `form:"category_id"`
	DueBefore  string `form:"due_before"`
	DueAfter   string `form:"due_after"`
	Search     string `form:"search"`
	Skip       int    `form:"skip"`
	Limit      int    `form:"limit"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64              `json:"id"`
	Number      *int               `json:"number"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	Priority    string             `json:"priority"`
	DueDate     *response.Date     `json:"due_date"`
	CategoryID  *int64             `json:"category_id"`
	CreatedBy   int64              `json:"created_by"`
	AssignedTo  *int64             `json:"assigned_to"`
	CompletedAt *response.DateTime `json:"completed_at"`
	ArchivedAt  *response.DateTime `json:"archived_at"`
	CreatedAt   response.DateTime  `json:"created_at"`
	LastUpdated *response.DateTime `json:"last_updated"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Number:      t.Number,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CategoryID:  t.CategoryID,
		CreatedBy:   t.CreatedBy,
		AssignedTo:  t.AssignedTo,
		CreatedAt:   response.DateTime(t.CreatedAt),
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	if t.CompletedAt != nil {
		d := response.DateTime(*t.CompletedAt)
		resp.CompletedAt = &d
	}
	if t.ArchivedAt != nil {
		d := response.DateTime(*t.ArchivedAt)
		resp.ArchivedAt = &d
	}
	if t.LastUpdated != nil {
		d := response.DateTime(*t.LastUpdated)
		resp.LastUpdated = &d
	}
	return resp
}

func newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type duplicateResp struct {
	Title             string `json:"title"`
	Number            *int   `json:"number"`
	MatchedExistingID *int64 `json:"matched_existing_id"`
	Reason            string `json:"reason"`
}

type importResp struct {
	BatchID         string          `json:"batch_id"`
	Created         []taskResp      `json:"created"`
	Duplicates      []duplicateResp `json:"duplicates"`
	TotalParsed     int             `json:"total_parsed"`
	TotalCreated    int             `json:"total_created"`
	TotalDuplicates int             `json:"total_duplicates"`
}

func newImportResp(out task.ImportOutput) importResp {
	duplicates := make([]duplicateResp, len(out.Duplicates))
	for i, d := range out.Duplicates {
		duplicates[i] = duplicateResp{
			Title:             d.Title,
			Number:            d.Number,
			MatchedExistingID: d.MatchedExistingID,
			Reason:            d.Reason,
		}
	}
	return importResp{
		BatchID:         out.BatchID,
		Created:         newTaskListResp(out.Created),
		Duplicates:      duplicates,
		TotalParsed:     out.TotalParsed,
		TotalCreated:    out.TotalCreated,
		TotalDuplicates: out.TotalDuplicates,
	}
}

type detailResp struct {
	taskResp
	Comments []commentResp `json:"comments"`
}

type commentResp struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Content   string            `json:"content"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newDetailResp(t model.Task, comments []model.Comment) detailResp {
	resp := detailResp{taskResp: newTaskResp(t), Comments: []commentResp{}}
	for _, c := range comments {
		resp.Comments = append(resp.Comments, commentResp{
			ID:        c.ID,
			UserID:    c.UserID,
			Content:   c.Content,
			CreatedAt: response.DateTime(c.CreatedAt),
		})
	}
	return resp
}

type nextNumberResp struct {
	NextNumber int `json:"next_number"`
}
