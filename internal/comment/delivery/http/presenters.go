package http

import (
	"impag-tasks/internal/model"
	"impag-tasks/pkg/response"
)

type commentResp struct {
	ID        int64             `json:"id"`
	TaskID    int64             `json:"task_id"`
	UserID    int64             `json:"user_id"`
	Content   string            `json:"content"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newCommentResp(c model.Comment) commentResp {
	return commentResp{
		ID:        c.ID,
		TaskID:    c.TaskID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: response.DateTime(c.CreatedAt),
	}
}

func newListResp(comments []model.Comment) []commentResp {
	out := make([]commentResp, len(comments))
	for i, c := range comments {
		out[i] = newCommentResp(c)
	}
	return out
}
