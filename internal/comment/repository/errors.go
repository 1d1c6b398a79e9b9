package repository

import "errors"

var (
	ErrNotFound       = errors.New("comment not found")
	ErrFailedToInsert = errors.New("failed to insert comment")
	ErrFailedToGet    = errors.New("failed to get comment")
	ErrFailedToList   = errors.New("failed to list comments")
	ErrFailedToDelete = errors.New("failed to delete comment")
)
