package models

import (
	"errors"
	"time"
)

// DateLayout is the calendar form used for operation dates. Dates are stored
// as fixed-width strings so that lexicographic comparison matches
// chronological comparison.
const DateLayout = "2006-01-02"

var (
	ErrOperationValueNotPositive    = errors.New("operation value must be positive")
	ErrOperationDateInvalid         = errors.New("operation date must be in YYYY-MM-DD form")
	ErrOperationSubcategoryRequired = errors.New("operation must reference a subcategory")
)

// Operation is a single dated monetary transaction attached to a subcategory.
// Value is an amount in minor currency units.
type Operation struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	SubcategoryID int64  `gorm:"not null;index" json:"subcategory_id"`
	Date          string `gorm:"type:text;not null;index" json:"date"`
	Value         int64  `gorm:"not null" json:"value"`

	// Associations
	Subcategory Subcategory `gorm:"foreignKey:SubcategoryID" json:"-"`
}

func (Operation) TableName() string {
	return "operations"
}

// Validate validates the operation fields
func (o *Operation) Validate() error {
	if o.SubcategoryID <= 0 {
		return ErrOperationSubcategoryRequired
	}
	if !IsValidOperationDate(o.Date) {
		return ErrOperationDateInvalid
	}
	if o.Value <= 0 {
		return ErrOperationValueNotPositive
	}
	return nil
}

// IsValidOperationDate reports whether s is a real calendar date in
// zero-padded YYYY-MM-DD form.
func IsValidOperationDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
