package usecase

import (
	"context"
	"errors"
	"strings"

	"impag-tasks/internal/comment"
	"impag-tasks/internal/comment/repository"
	"impag-tasks/internal/model"
)

func (uc *implUseCase) ListByTask(ctx context.Context, sc model.Scope, taskID int64) ([]model.Comment, error) {
	comments, err := uc.repo.ListCommentsByTask(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "comment.usecase.ListByTask: %v", err)
		return nil, err
	}
	return comments, nil
}

func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input comment.AddInput) (model.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return model.Comment{}, comment.ErrContentRequired
	}

	c, err := uc.repo.CreateComment(ctx, repository.CreateCommentOptions{
		TaskID:  input.TaskID,
		UserID:  sc.UserID,
		Content: content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "comment.usecase.Add: %v", err)
		return model.Comment{}, err
	}
	return c, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	c, err := uc.repo.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return comment.ErrCommentNotFound
		}
		uc.l.Errorf(ctx, "comment.usecase.Delete: %v", err)
		return err
	}
	if c.UserID != sc.UserID {
		return comment.ErrNotAuthor
	}

	if err := uc.repo.DeleteComment(ctx, id); err != nil {
		uc.l.Errorf(ctx, "comment.usecase.Delete: %v", err)
		return err
	}
	return nil
}
