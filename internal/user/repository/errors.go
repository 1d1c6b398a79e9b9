package repository

import "errors"

var (
	ErrNotFound       = errors.New("user not found")
	ErrFailedToInsert = errors.New("failed to insert user")
	ErrFailedToGet    = errors.New("failed to get user")
	ErrFailedToList   = errors.New("failed to list users")
)
