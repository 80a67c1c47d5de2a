package database

import (
	"fmt"
	"testing"

	"finledger/internal/config"
	"finledger/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"operations",
		"subcategories",
		"categories",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestCategory(t *testing.T, db *DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestSubcategory(t *testing.T, db *DB, categoryID int64, name string) *models.Subcategory {
	t.Helper()

	subcategory := &models.Subcategory{CategoryID: categoryID, Name: name}
	if err := db.Create(subcategory).Error; err != nil {
		t.Fatalf("failed to create test subcategory: %v", err)
	}

	return subcategory
}

func CreateTestOperation(t *testing.T, db *DB, subcategoryID int64, date string, value int64) *models.Operation {
	t.Helper()

	operation := &models.Operation{SubcategoryID: subcategoryID, Date: date, Value: value}
	if err := db.Create(operation).Error; err != nil {
		t.Fatalf("failed to create test operation: %v", err)
	}

	return operation
}
