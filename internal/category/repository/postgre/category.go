package postgre

import (
	"context"
	"database/sql"
	"fmt"

	repo "impag-tasks/internal/category/repository"
	"impag-tasks/internal/model"
)

const categoryColumns = `id, name, color, icon, created_by, sort_order, is_active, created_at, last_updated`

func scanCategory(row interface{ Scan(dest ...any) error }) (model.Category, error) {
	var c model.Category
	var color, icon sql.NullString
	err := row.Scan(&c.ID, &c.Name, &color, &icon, &c.CreatedBy, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.LastUpdated)
	if err != nil {
		return model.Category{}, err
	}
	c.Color = color.String
	c.Icon = icon.String
	return c, nil
}

func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (model.Category, error) {
	query := fmt.Sprintf(`
		INSERT INTO task_category (name, color, icon, created_by, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING %s`, categoryColumns)

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, opt.Name, opt.Color, opt.Icon, opt.CreatedBy, opt.SortOrder))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return model.Category{}, repo.ErrFailedToInsert
	}
	return c, nil
}

func (r *implRepository) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	query := fmt.Sprintf("SELECT %s FROM task_category WHERE id = $1", categoryColumns)

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCategory"), err)
		return model.Category{}, repo.ErrFailedToGet
	}
	return c, nil
}

func (r *implRepository) ListActiveCategories(ctx context.Context) ([]model.Category, error) {
	query := fmt.Sprintf("SELECT %s FROM task_category WHERE is_active = TRUE ORDER BY sort_order, name", categoryColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActiveCategories"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		c, scanErr := scanCategory(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (model.Category, error) {
	sets := ""
	var args []any
	set := func(col string, v any) {
		if sets != "" {
			sets += ", "
		}
		args = append(args, v)
		sets += fmt.Sprintf("%s = $%d", col, len(args))
	}
	if opt.Name != nil {
		set("name", *opt.Name)
	}
	if opt.Color != nil {
		set("color", *opt.Color)
	}
	if opt.Icon != nil {
		set("icon", *opt.Icon)
	}
	if opt.SortOrder != nil {
		set("sort_order", *opt.SortOrder)
	}
	if sets == "" {
		return r.GetCategory(ctx, opt.ID)
	}
	sets += ", last_updated = NOW()"

	args = append(args, opt.ID)
	query := fmt.Sprintf("UPDATE task_category SET %s WHERE id = $%d RETURNING %s", sets, len(args), categoryColumns)

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return model.Category{}, repo.ErrFailedToUpdate
	}
	return c, nil
}

func (r *implRepository) DeactivateCategory(ctx context.Context, id int64) error {
	const query = `UPDATE task_category SET is_active = FALSE, last_updated = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeactivateCategory"), err)
		return repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrNotFound
	}
	return nil
}
