package comment

import (
	"context"

	"impag-tasks/internal/model"
)

// UseCase defines the business logic interface for the comment domain.
type UseCase interface {
	ListByTask(ctx context.Context, sc model.Scope, taskID int64) ([]model.Comment, error)
	Add(ctx context.Context, sc model.Scope, input AddInput) (model.Comment, error)

	// Delete removes a comment. Only the author may delete it.
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
