package repository

import "errors"

var (
	ErrNotFound       = errors.New("task record not found")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrTxFailed       = errors.New("allocation transaction failed")
)
