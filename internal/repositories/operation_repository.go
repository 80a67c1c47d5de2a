package repositories

import (
	"errors"
	"fmt"

	"finledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrOperationNotFound        = errors.New("operation not found")
	ErrOperationSubcategoryGone = errors.New("referenced subcategory does not exist")
)

// OperationRepository handles database operations for ledger operations
type OperationRepository struct {
	db *gorm.DB
}

// NewOperationRepository creates a new operation repository
func NewOperationRepository(db *gorm.DB) OperationRepositoryInterface {
	return &OperationRepository{
		db: db,
	}
}

// List returns all operations, newest first
func (r *OperationRepository) List() ([]models.Operation, error) {
	var operations []models.Operation
	if err := r.db.Order("date DESC, id DESC").Find(&operations).Error; err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	return operations, nil
}

// Create inserts a new operation and returns the backend-assigned record
func (r *OperationRepository) Create(subcategoryID int64, date string, value int64) (*models.Operation, error) {
	operation := &models.Operation{SubcategoryID: subcategoryID, Date: date, Value: value}
	if err := operation.Validate(); err != nil {
		return nil, err
	}

	if err := r.db.Create(operation).Error; err != nil {
		if isForeignKeyError(err) {
			return nil, ErrOperationSubcategoryGone
		}
		return nil, fmt.Errorf("failed to create operation: %w", err)
	}

	return operation, nil
}

// Update replaces an existing operation's subcategory, date and value
func (r *OperationRepository) Update(id int64, subcategoryID int64, date string, value int64) error {
	operation := &models.Operation{ID: id, SubcategoryID: subcategoryID, Date: date, Value: value}
	if err := operation.Validate(); err != nil {
		return err
	}

	result := r.db.Model(&models.Operation{}).Where("id = ?", id).Updates(map[string]interface{}{
		"subcategory_id": subcategoryID,
		"date":           date,
		"value":          value,
	})
	if result.Error != nil {
		if isForeignKeyError(result.Error) {
			return ErrOperationSubcategoryGone
		}
		return fmt.Errorf("failed to update operation: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrOperationNotFound
	}

	return nil
}

// Delete removes an operation
func (r *OperationRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Operation{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete operation: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrOperationNotFound
	}

	return nil
}
