package dto

import (
	"finledger/internal/models"
)

// CreateSubcategoryRequest is the payload for creating a subcategory
type CreateSubcategoryRequest struct {
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required"`
}

// UpdateSubcategoryRequest is the payload for renaming a subcategory
type UpdateSubcategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// SubcategoryResponse represents a subcategory in API responses
type SubcategoryResponse struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
}

// ListSubcategoriesResponse represents the response for listing subcategories
type ListSubcategoriesResponse struct {
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

// NewSubcategoryResponse converts a subcategory model to its response shape
func NewSubcategoryResponse(subcategory models.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:         subcategory.ID,
		CategoryID: subcategory.CategoryID,
		Name:       subcategory.Name,
	}
}

// NewListSubcategoriesResponse converts a subcategory collection to its response shape
func NewListSubcategoriesResponse(subcategories []models.Subcategory) ListSubcategoriesResponse {
	response := ListSubcategoriesResponse{
		Subcategories: make([]SubcategoryResponse, 0, len(subcategories)),
	}
	for _, subcategory := range subcategories {
		response.Subcategories = append(response.Subcategories, NewSubcategoryResponse(subcategory))
	}
	return response
}
