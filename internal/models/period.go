package models

import "errors"

// Period is a symbolic time-range filter resolved against a reference
// instant by the date range resolver.
type Period string

const (
	PeriodDay    Period = "day"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodYear   Period = "year"
	PeriodCustom Period = "custom"
)

// AllPeriods returns all valid period constants
func AllPeriods() []Period {
	return []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodCustom}
}

// IsValidPeriod checks if a period string is valid
func IsValidPeriod(p Period) bool {
	for _, valid := range AllPeriods() {
		if p == valid {
			return true
		}
	}
	return false
}

// DateRange is an inclusive [From, To] range of YYYY-MM-DD date strings.
// An empty string means the range is unbounded on that side.
type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Contains reports whether date falls inside the range. String comparison
// is valid because dates are fixed-width YYYY-MM-DD.
func (r DateRange) Contains(date string) bool {
	if r.From != "" && date < r.From {
		return false
	}
	if r.To != "" && date > r.To {
		return false
	}
	return true
}

var ErrScopeConflict = errors.New("category and subcategory scopes are mutually exclusive")

// Scope optionally restricts filtering to one category or one subcategory.
// The zero value means no scope. CategoryID and SubcategoryID are mutually
// exclusive.
type Scope struct {
	CategoryID    int64 `json:"category_id,omitempty"`
	SubcategoryID int64 `json:"subcategory_id,omitempty"`
}

// IsZero reports whether no scope is set
func (s Scope) IsZero() bool {
	return s.CategoryID == 0 && s.SubcategoryID == 0
}

// Validate validates that at most one scope dimension is set
func (s Scope) Validate() error {
	if s.CategoryID != 0 && s.SubcategoryID != 0 {
		return ErrScopeConflict
	}
	return nil
}
