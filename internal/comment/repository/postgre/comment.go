package postgre

import (
	"context"
	"database/sql"
	"fmt"

	repo "impag-tasks/internal/comment/repository"
	"impag-tasks/internal/model"
)

const commentColumns = `id, task_id, user_id, content, created_at, last_updated`

func scanComment(row interface{ Scan(dest ...any) error }) (model.Comment, error) {
	var c model.Comment
	err := row.Scan(&c.ID, &c.TaskID, &c.UserID, &c.Content, &c.CreatedAt, &c.LastUpdated)
	if err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.Comment, error) {
	query := fmt.Sprintf(`
		INSERT INTO task_comment (task_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING %s`, commentColumns)

	c, err := scanComment(r.db.QueryRowContext(ctx, query, opt.TaskID, opt.UserID, opt.Content))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return model.Comment{}, repo.ErrFailedToInsert
	}
	return c, nil
}

func (r *implRepository) GetComment(ctx context.Context, id int64) (model.Comment, error) {
	query := fmt.Sprintf("SELECT %s FROM task_comment WHERE id = $1", commentColumns)

	c, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Comment{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetComment"), err)
		return model.Comment{}, repo.ErrFailedToGet
	}
	return c, nil
}

func (r *implRepository) ListCommentsByTask(ctx context.Context, taskID int64) ([]model.Comment, error) {
	query := fmt.Sprintf("SELECT %s FROM task_comment WHERE task_id = $1 ORDER BY created_at", commentColumns)

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCommentsByTask"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		c, scanErr := scanComment(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *implRepository) DeleteComment(ctx context.Context, id int64) error {
	const query = `DELETE FROM task_comment WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteComment"), err)
		return repo.ErrFailedToDelete
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}
	return nil
}
