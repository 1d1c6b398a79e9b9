package category

import (
	"context"

	"impag-tasks/internal/model"
)

// UseCase defines the business logic interface for the category domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Category, error)
	List(ctx context.Context, sc model.Scope) ([]model.Category, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Category, error)

	// Delete soft-deletes a category; tasks keep the reference.
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
