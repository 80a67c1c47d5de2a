package services

import (
	"time"

	"finledger/internal/models"
)

// LedgerStoreInterface is the authoritative in-memory mirror of the three
// ledger collections. Every mutation goes through it; readers take value
// snapshots that stay consistent for one computation pass.
type LedgerStoreInterface interface {
	// Snapshot lifecycle
	LoadAll() error
	RefreshCategories() error
	RefreshSubcategories() error
	RefreshOperations() error
	Ready() bool
	LastError() string
	Snapshot() models.Snapshot

	// Read accessors
	Categories() []models.Category
	Subcategories() []models.Subcategory
	Operations() []models.Operation
	SubcategoriesOf(categoryID int64) []models.Subcategory
	OperationsOf(subcategoryID int64) []models.Operation

	// Mutations
	CreateCategory(name string) (*models.Category, error)
	UpdateCategory(id int64, name string) error
	RemoveCategory(id int64) error
	CreateSubcategory(categoryID int64, name string) (*models.Subcategory, error)
	UpdateSubcategory(id int64, name string) error
	RemoveSubcategory(id int64) error
	CreateOperation(subcategoryID int64, date string, value int64) (*models.Operation, error)
	UpdateOperation(id int64, subcategoryID int64, date string, value int64) error
	RemoveOperation(id int64) error
}

// AggregationServiceInterface turns a filtered operation list into summary
// statistics and the two-level display tree.
type AggregationServiceInterface interface {
	Summarize(snapshot models.Snapshot, operations []models.Operation) *models.Summary
}

// MetricsRecorderInterface defines the contract for recording ledger metrics
type MetricsRecorderInterface interface {
	IncrementBackendCall(entity, operation, status string)
	RecordLoadDuration(duration time.Duration)
	SetEntityCounts(categories, subcategories, operations int)
	AddDroppedOperations(count int)
	RecordSummaryDuration(duration time.Duration)
}
