package repositories

import (
	"errors"
	"fmt"
	"strings"

	"finledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSubcategoryNotFound      = errors.New("subcategory not found")
	ErrSubcategoryAlreadyExists = errors.New("subcategory already exists in this category")
	ErrSubcategoryCategoryGone  = errors.New("referenced category does not exist")
)

// SubcategoryRepository handles database operations for subcategories
type SubcategoryRepository struct {
	db *gorm.DB
}

// NewSubcategoryRepository creates a new subcategory repository
func NewSubcategoryRepository(db *gorm.DB) SubcategoryRepositoryInterface {
	return &SubcategoryRepository{
		db: db,
	}
}

// List returns all subcategories
func (r *SubcategoryRepository) List() ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	if err := r.db.Order("id").Find(&subcategories).Error; err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}

	return subcategories, nil
}

// Create inserts a new subcategory and returns the backend-assigned record
func (r *SubcategoryRepository) Create(categoryID int64, name string) (*models.Subcategory, error) {
	subcategory := &models.Subcategory{CategoryID: categoryID, Name: name}
	if err := subcategory.Validate(); err != nil {
		return nil, err
	}

	if err := r.db.Create(subcategory).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrSubcategoryAlreadyExists
		}
		if isForeignKeyError(err) {
			return nil, ErrSubcategoryCategoryGone
		}
		return nil, fmt.Errorf("failed to create subcategory: %w", err)
	}

	return subcategory, nil
}

// Update renames an existing subcategory
func (r *SubcategoryRepository) Update(id int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return models.ErrSubcategoryNameRequired
	}

	result := r.db.Model(&models.Subcategory{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrSubcategoryAlreadyExists
		}
		return fmt.Errorf("failed to update subcategory: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrSubcategoryNotFound
	}

	return nil
}

// Delete removes a subcategory; its operations are removed by the schema cascade
func (r *SubcategoryRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Subcategory{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete subcategory: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrSubcategoryNotFound
	}

	return nil
}

func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "FOREIGN KEY constraint") ||
		strings.Contains(errStr, "foreign key constraint") ||
		strings.Contains(errStr, "23503")
}
