package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		CreatedAt: cat.CreatedAt,
	}
}

// ToCategoryListResponse converts domain categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{Categories: responses}
}
