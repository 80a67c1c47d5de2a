package models

import (
	"errors"
	"strings"
)

var (
	ErrSubcategoryNameRequired     = errors.New("subcategory name is required")
	ErrSubcategoryCategoryRequired = errors.New("subcategory must reference a category")
)

// Subcategory groups operations under one category. Its CategoryID must
// always resolve to a live Category; the backend schema enforces this with
// an ON DELETE CASCADE foreign key.
type Subcategory struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID int64  `gorm:"not null;index;uniqueIndex:idx_subcategories_category_name" json:"category_id"`
	Name       string `gorm:"type:text;not null;uniqueIndex:idx_subcategories_category_name" json:"name"`

	// Associations
	Category   Category    `gorm:"foreignKey:CategoryID" json:"-"`
	Operations []Operation `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Subcategory) TableName() string {
	return "subcategories"
}

// Validate validates the subcategory fields
func (s *Subcategory) Validate() error {
	if s.CategoryID <= 0 {
		return ErrSubcategoryCategoryRequired
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrSubcategoryNameRequired
	}
	return nil
}
