package user

import (
	"context"

	"impag-tasks/internal/model"
)

// UseCase defines the business logic interface for the user domain.
type UseCase interface {
	// EnsureUser returns the user with the given email, provisioning one
	// on first sight. Called by the auth middleware after the identity
	// token checks out.
	EnsureUser(ctx context.Context, input EnsureUserInput) (model.User, error)

	// List returns all active users.
	List(ctx context.Context, sc model.Scope) ([]model.User, error)

	// Me returns the calling user.
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}
