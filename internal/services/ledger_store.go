package services

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"finledger/internal/models"
	"finledger/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// ledgerStore keeps the authoritative in-memory copy of the three ledger
// collections. Mutations call the backend first and touch the collections
// only after the backend confirms; a failed call leaves the snapshot
// untouched. Installed snapshots are immutable: every change builds fresh
// slices, so a reader holding a snapshot never observes a partial update.
type ledgerStore struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	subcategoryRepo repositories.SubcategoryRepositoryInterface
	operationRepo   repositories.OperationRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger

	mu        sync.RWMutex
	snapshot  models.Snapshot
	ready     bool
	lastError string

	// loadSeq orders full reloads so a slow LoadAll cannot overwrite the
	// result of a newer one; generation stamps every installed snapshot.
	loadSeq    uint64
	generation uint64
}

// NewLedgerStore creates a new LedgerStoreInterface instance
func NewLedgerStore(
	categoryRepo repositories.CategoryRepositoryInterface,
	subcategoryRepo repositories.SubcategoryRepositoryInterface,
	operationRepo repositories.OperationRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerStoreInterface {
	return &ledgerStore{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		operationRepo:   operationRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// LoadAll fetches the three collections concurrently and installs them as
// one atomic snapshot. Either all three fetches succeed and are installed
// together, or none are and the error state is raised. Safe to call
// repeatedly; a reload outpaced by a newer reload discards its result.
func (s *ledgerStore) LoadAll() error {
	start := time.Now()

	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.mu.Unlock()

	var (
		categories    []models.Category
		subcategories []models.Subcategory
		operations    []models.Operation
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.List()
		s.recordCall("category", "list", err)
		return err
	})
	g.Go(func() error {
		var err error
		subcategories, err = s.subcategoryRepo.List()
		s.recordCall("subcategory", "list", err)
		return err
	})
	g.Go(func() error {
		var err error
		operations, err = s.operationRepo.List()
		s.recordCall("operation", "list", err)
		return err
	})

	if err := g.Wait(); err != nil {
		s.mu.Lock()
		if seq == s.loadSeq {
			s.lastError = err.Error()
		}
		s.mu.Unlock()

		s.logger.Error("ledger load failed", "error", err)
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.loadSeq {
		s.logger.Warn("discarding stale ledger load result",
			"seq", seq,
			"latest", s.loadSeq)
		return nil
	}

	s.generation++
	s.snapshot = models.Snapshot{
		Generation:    s.generation,
		Categories:    categories,
		Subcategories: subcategories,
		Operations:    operations,
	}
	s.ready = true
	s.lastError = ""

	s.metrics.RecordLoadDuration(time.Since(start))
	s.metrics.SetEntityCounts(len(categories), len(subcategories), len(operations))
	s.logger.Info("ledger loaded",
		"generation", s.generation,
		"categories", len(categories),
		"subcategories", len(subcategories),
		"operations", len(operations))

	return nil
}

// RefreshCategories refetches only the category collection.
func (s *ledgerStore) RefreshCategories() error {
	seq := s.currentLoadSeq()

	categories, err := s.categoryRepo.List()
	s.recordCall("category", "list", err)
	if err != nil {
		return fmt.Errorf("failed to refresh categories: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.loadSeq {
		return nil
	}
	s.install(models.Snapshot{
		Categories:    categories,
		Subcategories: s.snapshot.Subcategories,
		Operations:    s.snapshot.Operations,
	})
	return nil
}

// RefreshSubcategories refetches only the subcategory collection.
func (s *ledgerStore) RefreshSubcategories() error {
	seq := s.currentLoadSeq()

	subcategories, err := s.subcategoryRepo.List()
	s.recordCall("subcategory", "list", err)
	if err != nil {
		return fmt.Errorf("failed to refresh subcategories: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.loadSeq {
		return nil
	}
	s.install(models.Snapshot{
		Categories:    s.snapshot.Categories,
		Subcategories: subcategories,
		Operations:    s.snapshot.Operations,
	})
	return nil
}

// RefreshOperations refetches only the operation collection.
func (s *ledgerStore) RefreshOperations() error {
	seq := s.currentLoadSeq()

	operations, err := s.operationRepo.List()
	s.recordCall("operation", "list", err)
	if err != nil {
		return fmt.Errorf("failed to refresh operations: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.loadSeq {
		return nil
	}
	s.install(models.Snapshot{
		Categories:    s.snapshot.Categories,
		Subcategories: s.snapshot.Subcategories,
		Operations:    operations,
	})
	return nil
}

// Ready reports whether an initial LoadAll has installed a snapshot.
func (s *ledgerStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// LastError returns the error message of the most recent failed load, or
// the empty string.
func (s *ledgerStore) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// Snapshot returns the currently installed snapshot.
func (s *ledgerStore) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Categories returns the current category collection.
func (s *ledgerStore) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Categories
}

// Subcategories returns the current subcategory collection.
func (s *ledgerStore) Subcategories() []models.Subcategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Subcategories
}

// Operations returns the current operation collection.
func (s *ledgerStore) Operations() []models.Operation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Operations
}

// SubcategoriesOf returns the subcategories belonging to one category.
func (s *ledgerStore) SubcategoriesOf(categoryID int64) []models.Subcategory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Subcategory{}
	for _, sub := range s.snapshot.Subcategories {
		if sub.CategoryID == categoryID {
			result = append(result, sub)
		}
	}
	return result
}

// OperationsOf returns the operations belonging to one subcategory.
func (s *ledgerStore) OperationsOf(subcategoryID int64) []models.Operation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Operation{}
	for _, op := range s.snapshot.Operations {
		if op.SubcategoryID == subcategoryID {
			result = append(result, op)
		}
	}
	return result
}

// CreateCategory validates the name, creates the category on the backend
// and appends the confirmed record.
func (s *ledgerStore) CreateCategory(name string) (*models.Category, error) {
	candidate := models.Category{Name: name}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.Create(candidate.Name)
	s.recordCall("category", "create", err)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.install(models.Snapshot{
		Categories:    appendCategory(s.snapshot.Categories, *category),
		Subcategories: s.snapshot.Subcategories,
		Operations:    s.snapshot.Operations,
	})

	s.logger.Info("category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

// UpdateCategory validates the name, updates the backend and replaces the
// matching record in place.
func (s *ledgerStore) UpdateCategory(id int64, name string) error {
	candidate := models.Category{ID: id, Name: name}
	if err := candidate.Validate(); err != nil {
		return err
	}

	err := s.categoryRepo.Update(id, candidate.Name)
	s.recordCall("category", "update", err)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]models.Category, len(s.snapshot.Categories))
	copy(categories, s.snapshot.Categories)
	for i := range categories {
		if categories[i].ID == id {
			categories[i].Name = candidate.Name
			break
		}
	}
	s.install(models.Snapshot{
		Categories:    categories,
		Subcategories: s.snapshot.Subcategories,
		Operations:    s.snapshot.Operations,
	})

	return nil
}

// RemoveCategory deletes the category on the backend, then strikes it and
// every dependent subcategory and operation from the snapshot in one step.
// The doomed id sets are computed in full before anything is removed.
func (s *ledgerStore) RemoveCategory(id int64) error {
	err := s.categoryRepo.Delete(id)
	s.recordCall("category", "delete", err)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doomedSubcategories := map[int64]struct{}{}
	for _, sub := range s.snapshot.Subcategories {
		if sub.CategoryID == id {
			doomedSubcategories[sub.ID] = struct{}{}
		}
	}

	categories := make([]models.Category, 0, len(s.snapshot.Categories))
	for _, c := range s.snapshot.Categories {
		if c.ID != id {
			categories = append(categories, c)
		}
	}
	subcategories := make([]models.Subcategory, 0, len(s.snapshot.Subcategories))
	for _, sub := range s.snapshot.Subcategories {
		if _, doomed := doomedSubcategories[sub.ID]; !doomed {
			subcategories = append(subcategories, sub)
		}
	}
	operations := make([]models.Operation, 0, len(s.snapshot.Operations))
	for _, op := range s.snapshot.Operations {
		if _, doomed := doomedSubcategories[op.SubcategoryID]; !doomed {
			operations = append(operations, op)
		}
	}

	cascadedOperations := len(s.snapshot.Operations) - len(operations)
	s.install(models.Snapshot{
		Categories:    categories,
		Subcategories: subcategories,
		Operations:    operations,
	})

	s.logger.Info("category removed",
		"category_id", id,
		"cascaded_subcategories", len(doomedSubcategories),
		"cascaded_operations", cascadedOperations)
	return nil
}

// CreateSubcategory validates the name, creates the subcategory on the
// backend and appends the confirmed record.
func (s *ledgerStore) CreateSubcategory(categoryID int64, name string) (*models.Subcategory, error) {
	candidate := models.Subcategory{CategoryID: categoryID, Name: name}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	subcategory, err := s.subcategoryRepo.Create(categoryID, candidate.Name)
	s.recordCall("subcategory", "create", err)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.install(models.Snapshot{
		Categories:    s.snapshot.Categories,
		Subcategories: appendSubcategory(s.snapshot.Subcategories, *subcategory),
		Operations:    s.snapshot.Operations,
	})

	s.logger.Info("subcategory created",
		"subcategory_id", subcategory.ID,
		"category_id", categoryID,
		"name", subcategory.Name)
	return subcategory, nil
}

// UpdateSubcategory validates the name, updates the backend and replaces
// the matching record in place.
func (s *ledgerStore) UpdateSubcategory(id int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return models.ErrSubcategoryNameRequired
	}

	err := s.subcategoryRepo.Update(id, name)
	s.recordCall("subcategory", "update", err)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subcategories := make([]models.Subcategory, len(s.snapshot.Subcategories))
	copy(subcategories, s.snapshot.Subcategories)
	for i := range subcategories {
		if subcategories[i].ID == id {
			subcategories[i].Name = name
			break
		}
	}
	s.install(models.Snapshot{
		Categories:    s.snapshot.Categories,
		Subcategories: subcategories,
		Operations:    s.snapshot.Operations,
	})

	return nil
}

// RemoveSubcategory deletes the subcategory on the backend, then strikes it
// and its operations from the snapshot in one step.
func (s *ledgerStore) RemoveSubcategory(id int64) error {
	err := s.subcategoryRepo.Delete(id)
	s.recordCall("subcategory", "delete", err)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subcategories := make([]models.Subcategory, 0, len(s.snapshot.Subcategories))
	for _, sub := range s.snapshot.Subcategories {
		if sub.ID != id {
			subcategories = append(subcategories, sub)
		}
	}
	operations := make([]models.Operation, 0, len(s.snapshot.Operations))
	for _, op := range s.snapshot.Operations {
		if op.SubcategoryID != id {
			operations = append(operations, op)
		}
	}

	cascadedOperations := len(s.snapshot.Operations) - len(operations)
	s.install(models.Snapshot{
		Categories:    s.snapshot.Categories,
		Subcategories: subcategories,
		Operations:    operations,
	})

	s.logger.Info("subcategory removed",
		"subcategory_id", id,
		"cascaded_operations", cascadedOperations)
	return nil
}

// CreateOperation validates the input, creates the operation on the backend
// and prepends the confirmed record, matching the backend's newest-first
// list order.
func (s *ledgerStore) CreateOperation(subcategoryID int64, date string, value int64) (*models.Operation, error) {
	candidate := models.Operation{SubcategoryID: subcategoryID, Date: date, Value: value}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	operation, err := s.operationRepo.Create(subcategoryID, date, value)
	s.recordCall("operation", "create", err)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	operations := make([]models.Operation, 0, len(s.snapshot.Operations)+1)
	operations = append(operations, *operation)
	operations = append(operations, s.snapshot.Operations...)
	s.install(models.Snapshot{
		Categories:    s.snapshot.Categories,
		Subcategories: s.snapshot.Subcategories,
		Operations:    operations,
	})

	s.logger.Info("operation created",
		"operation_id", operation.ID,
		"subcategory_id", subcategoryID,
		"date", date,
		"value", value)
	return operation, nil
}

// UpdateOperation validates the input, updates the backend and replaces the
// matching record in place.
func (s *ledgerStore) UpdateOperation(id int64, subcategoryID int64, date string, value int64) error {
	candidate := models.Operation{ID: id, SubcategoryID: subcategoryID, Date: date, Value: value}
	if err := candidate.Validate(); err != nil {
		return err
	}

	err := s.operationRepo.Update(id, subcategoryID, date, value)
	s.recordCall("operation", "update", err)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	operations := make([]models.Operation, len(s.snapshot.Operations))
	copy(operations, s.snapshot.Operations)
	for i := range operations {
		if operations[i].ID == id {
			operations[i] = candidate
			break
		}
	}
	s.install(models.Snapshot{
		Categories:    s.snapshot.Categories,
		Subcategories: s.snapshot.Subcategories,
		Operations:    operations,
	})

	return nil
}

// RemoveOperation deletes the operation on the backend, then strikes it
// from the snapshot.
func (s *ledgerStore) RemoveOperation(id int64) error {
	err := s.operationRepo.Delete(id)
	s.recordCall("operation", "delete", err)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	operations := make([]models.Operation, 0, len(s.snapshot.Operations))
	for _, op := range s.snapshot.Operations {
		if op.ID != id {
			operations = append(operations, op)
		}
	}
	s.install(models.Snapshot{
		Categories:    s.snapshot.Categories,
		Subcategories: s.snapshot.Subcategories,
		Operations:    operations,
	})

	s.logger.Info("operation removed", "operation_id", id)
	return nil
}

// install stamps and publishes a new snapshot. Callers must hold s.mu.
func (s *ledgerStore) install(snapshot models.Snapshot) {
	s.generation++
	snapshot.Generation = s.generation
	s.snapshot = snapshot
	s.metrics.SetEntityCounts(
		len(snapshot.Categories),
		len(snapshot.Subcategories),
		len(snapshot.Operations))
}

func (s *ledgerStore) currentLoadSeq() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadSeq
}

func (s *ledgerStore) recordCall(entity, operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	s.metrics.IncrementBackendCall(entity, operation, status)
}

func appendCategory(categories []models.Category, category models.Category) []models.Category {
	result := make([]models.Category, 0, len(categories)+1)
	result = append(result, categories...)
	return append(result, category)
}

func appendSubcategory(subcategories []models.Subcategory, subcategory models.Subcategory) []models.Subcategory {
	result := make([]models.Subcategory, 0, len(subcategories)+1)
	result = append(result, subcategories...)
	return append(result, subcategory)
}
