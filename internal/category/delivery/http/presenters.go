package http

import (
	"impag-tasks/internal/category"
	"impag-tasks/internal/model"
	"impag-tasks/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Color     string `json:"color" binding:"max=20"`
	Icon      string `json:"icon" binding:"max=50"`
	SortOrder int    `json:"sort_order"`
}

func (r createReq) toInput() category.CreateInput {
	return category.CreateInput{
		Name:      r.Name,
		Color:     r.Color,
		Icon:      r.Icon,
		SortOrder: r.SortOrder,
	}
}

type updateReq struct {
	ID        int64   `json:"-"`
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	Color     *string `json:"color" binding:"omitempty,max=20"`
	Icon      *string `json:"icon" binding:"omitempty,max=50"`
	SortOrder *int    `json:"sort_order"`
}

func (r updateReq) toInput() category.UpdateInput {
	return category.UpdateInput{
		ID:        r.ID,
		Name:      r.Name,
		Color:     r.Color,
		Icon:      r.Icon,
		SortOrder: r.SortOrder,
	}
}

// --- Response DTOs ---

type categoryResp struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Color     string            `json:"color"`
	Icon      string            `json:"icon"`
	SortOrder int               `json:"sort_order"`
	CreatedBy int64             `json:"created_by"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newCategoryResp(c model.Category) categoryResp {
	return categoryResp{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		Icon:      c.Icon,
		SortOrder: c.SortOrder,
		CreatedBy: c.CreatedBy,
		CreatedAt: response.DateTime(c.CreatedAt),
	}
}

func newListResp(categories []model.Category) []categoryResp {
	out := make([]categoryResp, len(categories))
	for i, c := range categories {
		out[i] = newCategoryResp(c)
	}
	return out
}
