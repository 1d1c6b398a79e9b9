package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrContentRequired = errors.New("comment content is required")
	ErrNotAuthor       = errors.New("only the author can delete a comment")
)
