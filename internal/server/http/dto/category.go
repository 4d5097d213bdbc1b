package dto

import "github.com/polkiloo/storemart/internal/domain/model"

// CategoryRequest describes an admin category write.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse is the JSON view of a category.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// NewCategoryResponse maps a category onto its JSON view.
func NewCategoryResponse(category *model.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name, Description: category.Description}
}

// NewCategoryListResponse maps a category slice onto JSON views.
func NewCategoryListResponse(categories []model.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = NewCategoryResponse(&categories[i])
	}
	return out
}
