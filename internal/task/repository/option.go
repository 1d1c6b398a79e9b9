package repository

import (
	"time"

	"impag-tasks/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new task row.
type CreateTaskOptions struct {
	Number      *int
	Title       string
	Description string
	Priority    model.Priority
	Status      model.Status
	DueDate     *time.Time
	CategoryID  *int64
	CreatedBy   int64
	AssignedTo  *int64
	// CreatedAt overrides the insertion timestamp when the import text
	// carried an explicit date column. Zero means "now".
	CreatedAt time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
type GetOneTaskOptions struct {
	ID     int64
	Number int
}

// ListTasksOptions holds filter and pagination parameters for listing tasks.
type ListTasksOptions struct {
	Status model.Status
	// ExcludeArchived applies when Status is empty: the default listing
	// never shows archived tasks.
	ExcludeArchived bool
	AssignedTo      *int64
	CreatedBy       *int64
	Priority        model.Priority
	CategoryID      *int64
	Uncategorized   bool
	DueBefore       *time.Time
	DueAfter        *time.Time
	Search          string
	ArchivedSince   *time.Time
	Skip            int
	Limit           int
	OrderBy         string
}

// UpdateTaskOptions holds a partial update of task info fields.
// Nil pointers leave the column unchanged; Clear* flags write NULL.
type UpdateTaskOptions struct {
	ID            int64
	Title         *string
	Description   *string
	Priority      *model.Priority
	DueDate       *time.Time
	ClearDueDate  bool
	CategoryID    *int64
	ClearCategory bool
	AssignedTo    *int64
	ClearAssignee bool
}
