package task

import (
	"time"

	"impag-tasks/internal/model"
	"impag-tasks/pkg/lineparse"
)

// ImportInput is the input for bulk task import.
type ImportInput struct {
	RawText    string // Pasted task list, one task per line
	AssignedTo *int64 // Default assignee for every created task
}

// AnnotatedCandidate is a parsed candidate plus its duplicate verdict.
// IsDuplicate == true implies MatchedExistingID refers to a task from the
// snapshot the classifier saw; IsDuplicate == false implies no match id.
type AnnotatedCandidate struct {
	lineparse.Candidate

	IsDuplicate       bool
	MatchedExistingID *int64
	MatchReason       string
}

// DuplicateReport describes one skipped candidate in the import result.
type DuplicateReport struct {
	Title             string
	Number            *int
	MatchedExistingID *int64
	Reason            string
}

// ImportOutput is the result of one import call. Not persisted.
type ImportOutput struct {
	BatchID         string
	Created         []model.Task
	Duplicates      []DuplicateReport
	TotalParsed     int
	TotalCreated    int
	TotalDuplicates int
}

// CreateInput is the input for single task creation.
type CreateInput struct {
	Title       string
	Description string
	Priority    model.Priority
	DueDate     *time.Time
	CategoryID  *int64
	AssignedTo  *int64
}

// ListInput holds list filters. Zero values mean "no filter".
type ListInput struct {
	Status     model.Status
	AssignedTo *int64
	CreatedBy  *int64
	Priority   model.Priority
	// CategoryID filters by category; Uncategorized selects tasks with
	// no category and takes precedence over CategoryID.
	CategoryID    *int64
	Uncategorized bool
	DueBefore     *time.Time
	DueAfter      *time.Time
	Search        string
	Skip          int
	Limit         int
}

// UpdateInput holds a partial task update. Nil pointers leave the field
// unchanged; ClearDueDate/ClearCategory/ClearAssignee drop nullable fields.
type UpdateInput struct {
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
