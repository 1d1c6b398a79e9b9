package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"impag-tasks/internal/model"
	repo "impag-tasks/internal/task/repository"
)

const taskColumns = `id, task_number, title, description, status, priority, due_date,
	category_id, created_by, assigned_to, completed_at, archived_at, created_at, last_updated`

// querier is satisfied by both *sql.DB and *sql.Tx so the same query code
// serves plain calls and the allocation transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func scanTask(row interface{ Scan(dest ...any) error }) (model.Task, error) {
	var t model.Task
	var desc sql.NullString
	err := row.Scan(
		&t.ID, &t.Number, &t.Title, &desc, &t.Status, &t.Priority, &t.DueDate,
		&t.CategoryID, &t.CreatedBy, &t.AssignedTo, &t.CompletedAt, &t.ArchivedAt,
		&t.CreatedAt, &t.LastUpdated,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.Description = desc.String
	return t, nil
}

// GetOneTask retrieves a single task by the provided filters (AND condition).
// Returns ErrNotFound when no row matches.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM task WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns tasks matching the filters, newest first by default.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM task %s", taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), scanErr)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTaskInfo applies a partial update of the info fields and returns
// the updated row.
func (r *implRepository) UpdateTaskInfo(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	sets, args := buildUpdateQuery(opt)
	if sets == "" {
		return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
	}
	args = append(args, opt.ID)
	query := fmt.Sprintf("UPDATE task SET %s WHERE id = $%d RETURNING %s",
		sets, len(args), taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTaskInfo"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// UpdateTaskState writes the status-coupled columns from the task value.
func (r *implRepository) UpdateTaskState(ctx context.Context, t model.Task) (model.Task, error) {
	return updateTaskState(ctx, r.db, r, t)
}

func updateTaskState(ctx context.Context, q querier, r *implRepository, t model.Task) (model.Task, error) {
	const query = `
		UPDATE task
		SET status = $1, task_number = $2, completed_at = $3, archived_at = $4, last_updated = NOW()
		WHERE id = $5
		RETURNING ` + taskColumns

	updated, err := scanTask(q.QueryRowContext(ctx, query,
		t.Status, t.Number, t.CompletedAt, t.ArchivedAt, t.ID))
	if err == sql.ErrNoRows {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTaskState"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return updated, nil
}

// ArchiveCompletedBefore archives done tasks completed before cutoff and
// releases their numbers in the same statement.
func (r *implRepository) ArchiveCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `
		UPDATE task
		SET status = 'archived', archived_at = NOW(), task_number = NULL, last_updated = NOW()
		WHERE status = 'done' AND completed_at IS NOT NULL AND completed_at <= $1`

	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ArchiveCompletedBefore"), err)
		return 0, repo.ErrFailedToUpdate
	}
	n, _ := res.RowsAffected()
	return n, nil
}
