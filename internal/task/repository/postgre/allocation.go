package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"impag-tasks/internal/model"
	repo "impag-tasks/internal/task/repository"
)

// allocationLockKey is the pg_advisory_xact_lock key for the task-number
// namespace. All allocators serialize on it; the lock is released when
// the transaction commits or rolls back.
const allocationLockKey = 0x7461736b // "task"

// InAllocationTx runs fn inside a transaction holding the allocation lock.
func (r *implRepository) InAllocationTx(ctx context.Context, fn func(tx repo.AllocationTx) error) error {
	sqlTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("InAllocationTx"), err)
		return repo.ErrTxFailed
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
	}()

	if _, err := sqlTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", allocationLockKey); err != nil {
		_ = sqlTx.Rollback()
		r.l.Errorf(ctx, "%s lock: %v", r.dsn("InAllocationTx"), err)
		return repo.ErrTxFailed
	}

	if err := fn(&allocationTx{tx: sqlTx, r: r}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			r.l.Errorf(ctx, "%s rollback: %v (original: %v)", r.dsn("InAllocationTx"), rbErr, err)
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("InAllocationTx"), err)
		return repo.ErrTxFailed
	}
	return nil
}

// allocationTx implements repo.AllocationTx on top of an open *sql.Tx.
type allocationTx struct {
	tx *sql.Tx
	r  *implRepository
}

// ActiveNumbers returns numbers held by non-archived tasks, ascending.
func (a *allocationTx) ActiveNumbers(ctx context.Context) ([]int, error) {
	const query = `
		SELECT task_number FROM task
		WHERE task_number IS NOT NULL AND status != 'archived'
		ORDER BY task_number`

	rows, err := a.tx.QueryContext(ctx, query)
	if err != nil {
		a.r.l.Errorf(ctx, "%s: %v", a.r.dsn("ActiveNumbers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, repo.ErrFailedToList
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

// TasksHoldingNumbers returns active tasks holding any of the given
// numbers, ordered by number ascending so reassignment is deterministic.
func (a *allocationTx) TasksHoldingNumbers(ctx context.Context, numbers []int) ([]model.Task, error) {
	if len(numbers) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(numbers))
	args := make([]any, len(numbers))
	for i, n := range numbers {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = n
	}
	query := fmt.Sprintf(`SELECT %s FROM task
		WHERE task_number IN (%s) AND status != 'archived'
		ORDER BY task_number`, taskColumns, strings.Join(placeholders, ", "))

	rows, err := a.tx.QueryContext(ctx, query, args...)
	if err != nil {
		a.r.l.Errorf(ctx, "%s: %v", a.r.dsn("TasksHoldingNumbers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ReassignNumber moves an existing task to a new number.
func (a *allocationTx) ReassignNumber(ctx context.Context, taskID int64, number int) error {
	const query = `UPDATE task SET task_number = $1, last_updated = NOW() WHERE id = $2`

	res, err := a.tx.ExecContext(ctx, query, number, taskID)
	if err != nil {
		a.r.l.Errorf(ctx, "%s: %v", a.r.dsn("ReassignNumber"), err)
		return repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// InsertTask inserts a new task row inside the allocation transaction.
func (a *allocationTx) InsertTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	createdAt := opt.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	status := opt.Status
	if status == "" {
		status = model.StatusPending
	}
	priority := opt.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	query := `
		INSERT INTO task (task_number, title, description, status, priority, due_date,
			category_id, created_by, assigned_to, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + taskColumns

	var desc any
	if opt.Description != "" {
		desc = opt.Description
	}

	t, err := scanTask(a.tx.QueryRowContext(ctx, query,
		opt.Number, opt.Title, desc, status, priority, opt.DueDate,
		opt.CategoryID, opt.CreatedBy, opt.AssignedTo, createdAt))
	if err != nil {
		a.r.l.Errorf(ctx, "%s: %v", a.r.dsn("InsertTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// UpdateTaskState writes the status-coupled columns inside the transaction.
func (a *allocationTx) UpdateTaskState(ctx context.Context, t model.Task) (model.Task, error) {
	return updateTaskState(ctx, a.tx, a.r, t)
}
