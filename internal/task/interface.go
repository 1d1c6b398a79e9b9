package task

import (
	"context"

	"impag-tasks/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Import parses pasted free text, runs AI duplicate detection against
	// active tasks, and bulk-creates the non-duplicate candidates with
	// conflict-free task numbers. One logical transaction: either the
	// whole batch is created or nothing is.
	Import(ctx context.Context, sc model.Scope, input ImportInput) (ImportOutput, error)

	// NextNumber returns the smallest positive task number not held by
	// any non-archived task.
	NextNumber(ctx context.Context) (int, error)

	// Create creates a single task and assigns it the next free number.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// List returns tasks matching the filters. Archived tasks are
	// excluded unless an explicit status filter asks for them. Runs the
	// lazy auto-archive sweep first.
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Task, error)

	// ListArchive returns tasks archived within the last 30 days.
	ListArchive(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// Detail returns a single task by id.
	Detail(ctx context.Context, sc model.Scope, id int64) (model.Task, error)

	// Update applies a partial update to task fields.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// UpdateStatus transitions a task's status. Archiving releases the
	// task number; un-archiving assigns a fresh one.
	UpdateStatus(ctx context.Context, sc model.Scope, id int64, status model.Status) (model.Task, error)

	// Delete soft-deletes a task by archiving it.
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
