package model

import "time"

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusArchived   Status = "archived"
)

// ValidStatus reports whether s is a known status value.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusArchived:
		return true
	}
	return false
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ValidPriority reports whether p is a known priority value.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is a tracked work item.
//
// Number is the compact human-facing task number: positive, unique among
// tasks whose status is not archived, and nil exactly when the task is
// archived. It is distinct from the permanent surrogate ID and is
// released for reuse when the task is archived.
type Task struct {
	ID          int64
	Number      *int
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	CategoryID  *int64
	CreatedBy   int64
	AssignedTo  *int64
	CompletedAt *time.Time
	ArchivedAt  *time.Time
	CreatedAt   time.Time
	LastUpdated *time.Time
}

// Archived reports whether the task is in the archived state.
func (t Task) Archived() bool {
	return t.Status == StatusArchived
}
