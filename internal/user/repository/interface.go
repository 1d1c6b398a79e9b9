package repository

import (
	"context"

	"impag-tasks/internal/model"
)

// Repository defines all data access methods for the user entity.
type Repository interface {
	GetUserByID(ctx context.Context, id int64) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	ListActiveUsers(ctx context.Context) ([]model.User, error)
}
