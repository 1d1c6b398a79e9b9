package repository

import (
	"context"

	"impag-tasks/internal/model"
)

// Repository defines all data access methods for the category entity.
type Repository interface {
	CreateCategory(ctx context.Context, opt CreateCategoryOptions) (model.Category, error)
	GetCategory(ctx context.Context, id int64) (model.Category, error)
	ListActiveCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, opt UpdateCategoryOptions) (model.Category, error)
	DeactivateCategory(ctx context.Context, id int64) error
}
