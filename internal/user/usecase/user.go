package usecase

import (
	"context"
	"errors"
	"strings"

	"impag-tasks/internal/model"
	"impag-tasks/internal/user"
	"impag-tasks/internal/user/repository"
)

const defaultRole = "member"

// EnsureUser returns the user for the given email, provisioning one on
// first sight. The whitelist check happens before this in the auth
// middleware, so any email reaching here is allowed in.
func (uc *implUseCase) EnsureUser(ctx context.Context, input user.EnsureUserInput) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err == nil {
		if !u.IsActive {
			return model.User{}, user.ErrUserInactive
		}
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "user.usecase.EnsureUser: %v", err)
		return model.User{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Email:       email,
		DisplayName: input.DisplayName,
		AvatarURL:   input.AvatarURL,
		Role:        defaultRole,
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.EnsureUser: create: %v", err)
		return model.User{}, err
	}
	uc.l.Infof(ctx, "user.usecase.EnsureUser: provisioned user %d (%s)", created.ID, created.Email)
	return created, nil
}

// List returns all active users.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.User, error) {
	users, err := uc.repo.ListActiveUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.List: %v", err)
		return nil, err
	}
	return users, nil
}

// Me returns the calling user.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.GetUserByID(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.Me: %v", err)
		return model.User{}, err
	}
	return u, nil
}
