package services

import (
	"finledger/internal/models"
)

// FilterOperations applies the resolved range and an optional scope to the
// snapshot's operation collection. The result preserves the relative order
// of the input; range and scope compose by intersection. An inverted range
// or a category scope with no subcategories yields an empty result, never
// an error.
func FilterOperations(snapshot models.Snapshot, dateRange models.DateRange, scope models.Scope) []models.Operation {
	var allowed map[int64]struct{}
	if scope.CategoryID != 0 {
		allowed = snapshot.SubcategoryIDsOf(scope.CategoryID)
	}

	filtered := make([]models.Operation, 0, len(snapshot.Operations))
	for _, op := range snapshot.Operations {
		if !dateRange.Contains(op.Date) {
			continue
		}
		if scope.SubcategoryID != 0 && op.SubcategoryID != scope.SubcategoryID {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[op.SubcategoryID]; !ok {
				continue
			}
		}
		filtered = append(filtered, op)
	}

	return filtered
}
