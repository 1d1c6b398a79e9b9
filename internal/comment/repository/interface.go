package repository

import (
	"context"

	"impag-tasks/internal/model"
)

// Repository defines all data access methods for the comment entity.
type Repository interface {
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	GetComment(ctx context.Context, id int64) (model.Comment, error)
	ListCommentsByTask(ctx context.Context, taskID int64) ([]model.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
