package http

import (
	"impag-tasks/internal/model"
	"impag-tasks/pkg/response"
)

type userResp struct {
	ID          int64              `json:"id"`
	Email       string             `json:"email"`
	DisplayName string             `json:"display_name"`
	AvatarURL   string             `json:"avatar_url"`
	Role        string             `json:"role"`
	CreatedAt   response.DateTime  `json:"created_at"`
	LastUpdated *response.DateTime `json:"last_updated"`
}

func newUserResp(u model.User) userResp {
	resp := userResp{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		Role:        u.Role,
		CreatedAt:   response.DateTime(u.CreatedAt),
	}
	if u.LastUpdated != nil {
		lu := response.DateTime(*u.LastUpdated)
		resp.LastUpdated = &lu
	}
	return resp
}

func newListResp(users []model.User) []userResp {
	out := make([]userResp, len(users))
	for i, u := range users {
		out[i] = newUserResp(u)
	}
	return out
}
