package dto

import (
	"finledger/internal/models"
)

// CreateCategoryRequest is the payload for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateCategoryRequest is the payload for renaming a category
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListCategoriesResponse represents the response for listing categories
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// NewCategoryResponse converts a category model to its response shape
func NewCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

// NewListCategoriesResponse converts a category collection to its response shape
func NewListCategoriesResponse(categories []models.Category) ListCategoriesResponse {
	response := ListCategoriesResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}
	for _, category := range categories {
		response.Categories = append(response.Categories, NewCategoryResponse(category))
	}
	return response
}
