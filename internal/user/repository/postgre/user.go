package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"impag-tasks/internal/model"
	repo "impag-tasks/internal/user/repository"
)

const userColumns = `id, email, display_name, avatar_url, role, is_active, created_at, last_updated`

func scanUser(row interface{ Scan(dest ...any) error }) (model.User, error) {
	var u model.User
	var displayName, avatarURL sql.NullString
	err := row.Scan(&u.ID, &u.Email, &displayName, &avatarURL, &u.Role, &u.IsActive, &u.CreatedAt, &u.LastUpdated)
	if err != nil {
		return model.User{}, err
	}
	u.DisplayName = displayName.String
	u.AvatarURL = avatarURL.String
	return u, nil
}

func (r *implRepository) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	query := fmt.Sprintf("SELECT %s FROM task_user WHERE id = $1", userColumns)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUserByID"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query := fmt.Sprintf("SELECT %s FROM task_user WHERE LOWER(email) = LOWER($1)", userColumns)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUserByEmail"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO task_user (email, display_name, avatar_url, role, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING %s`, userColumns)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, opt.Email, opt.DisplayName, opt.AvatarURL, opt.Role))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

func (r *implRepository) ListActiveUsers(ctx context.Context) ([]model.User, error) {
	query := fmt.Sprintf("SELECT %s FROM task_user WHERE is_active = TRUE ORDER BY display_name, email", userColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActiveUsers"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
