package model

import "time"

// User is a member of the task system, provisioned from the Google
// identity of an allowed email.
type User struct {
	ID          int64
	Email       string
	DisplayName string
	AvatarURL   string
	Role        string
	IsActive    bool
	CreatedAt   time.Time
	LastUpdated *time.Time
}

// Category groups tasks. Soft-deleted via IsActive.
type Category struct {
	ID          int64
	Name        string
	Color       string
	Icon        string
	CreatedBy   int64
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
	LastUpdated *time.Time
}

// Comment is a note attached to a task.
type Comment struct {
	ID          int64
	TaskID      int64
	UserID      int64
	Content     string
	CreatedAt   time.Time
	LastUpdated *time.Time
}
