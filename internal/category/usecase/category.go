package usecase

import (
	"context"
	"errors"
	"strings"

	"impag-tasks/internal/category"
	"impag-tasks/internal/category/repository"
	"impag-tasks/internal/model"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input category.CreateInput) (model.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Category{}, category.ErrNameRequired
	}

	c, err := uc.repo.CreateCategory(ctx, repository.CreateCategoryOptions{
		Name:      name,
		Color:     input.Color,
		Icon:      input.Icon,
		SortOrder: input.SortOrder,
		CreatedBy: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "category.usecase.Create: %v", err)
		return model.Category{}, err
	}
	return c, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Category, error) {
	categories, err := uc.repo.ListActiveCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "category.usecase.List: %v", err)
		return nil, err
	}
	return categories, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input category.UpdateInput) (model.Category, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return model.Category{}, category.ErrNameRequired
	}

	c, err := uc.repo.UpdateCategory(ctx, repository.UpdateCategoryOptions{
		ID:        input.ID,
		Name:      input.Name,
		Color:     input.Color,
		Icon:      input.Icon,
		SortOrder: input.SortOrder,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Category{}, category.ErrCategoryNotFound
		}
		uc.l.Errorf(ctx, "category.usecase.Update: %v", err)
		return model.Category{}, err
	}
	return c, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	err := uc.repo.DeactivateCategory(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return category.ErrCategoryNotFound
		}
		uc.l.Errorf(ctx, "category.usecase.Delete: %v", err)
	}
	return err
}
