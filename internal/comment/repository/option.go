package repository

// CreateCommentOptions holds parameters for inserting a new comment row.
type CreateCommentOptions struct {
	TaskID  int64
	UserID  int64
	Content string
}
