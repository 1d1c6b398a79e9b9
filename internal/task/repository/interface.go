package repository

import (
	"context"
	"time"

	"impag-tasks/internal/model"
)

// Repository defines all data access methods for the task entity.
type Repository interface {
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTaskInfo(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)

	// UpdateTaskState writes the status-coupled fields (status, number,
	// completed_at, archived_at, last_updated) from the given task value.
	UpdateTaskState(ctx context.Context, t model.Task) (model.Task, error)

	// ArchiveCompletedBefore archives every done task whose completion is
	// older than cutoff, releasing its number. Returns the count archived.
	ArchiveCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// InAllocationTx runs fn inside a transaction that holds the
	// task-number allocation lock. Every path that reads the current
	// number holder set and then writes numbers must go through it: the
	// lock serializes concurrent allocators so two callers can never
	// compute the same "smallest free number". fn returning an error
	// rolls the whole transaction back.
	InAllocationTx(ctx context.Context, fn func(tx AllocationTx) error) error
}

// AllocationTx is the transactional view used for number allocation.
// All reads see, and all writes join, the surrounding transaction.
type AllocationTx interface {
	// ActiveNumbers returns every task number currently held by a
	// non-archived task, ascending.
	ActiveNumbers(ctx context.Context) ([]int, error)

	// TasksHoldingNumbers returns the non-archived tasks holding any of
	// the given numbers, ordered by number ascending.
	TasksHoldingNumbers(ctx context.Context, numbers []int) ([]model.Task, error)

	// ReassignNumber moves an existing task to a new number.
	ReassignNumber(ctx context.Context, taskID int64, number int) error

	// InsertTask inserts a new task row.
	InsertTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// UpdateTaskState is UpdateTaskState joined to the transaction; used
	// when un-archiving assigns the fresh number.
	UpdateTaskState(ctx context.Context, t model.Task) (model.Task, error)
}
