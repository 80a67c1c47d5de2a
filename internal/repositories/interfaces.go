package repositories

import (
	"finledger/internal/models"
)

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	List() ([]models.Category, error)
	Create(name string) (*models.Category, error)
	Update(id int64, name string) error
	Delete(id int64) error
}

// SubcategoryRepositoryInterface defines the contract for subcategory repository operations
type SubcategoryRepositoryInterface interface {
	List() ([]models.Subcategory, error)
	Create(categoryID int64, name string) (*models.Subcategory, error)
	Update(id int64, name string) error
	Delete(id int64) error
}

// OperationRepositoryInterface defines the contract for operation repository operations
type OperationRepositoryInterface interface {
	List() ([]models.Operation, error)
	Create(subcategoryID int64, date string, value int64) (*models.Operation, error)
	Update(id int64, subcategoryID int64, date string, value int64) error
	Delete(id int64) error
}
