package models

// Bucket is an aggregated total keyed by category or subcategory id, with
// its percentage share of the filtered total.
type Bucket struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

// SubcategoryGroup pairs a subcategory with its filtered operations, in
// filtered-list order.
type SubcategoryGroup struct {
	Subcategory Subcategory `json:"subcategory"`
	Operations  []Operation `json:"operations"`
}

// CategoryGroup is one node of the two-level display tree.
type CategoryGroup struct {
	Category      Category           `json:"category"`
	Subcategories []SubcategoryGroup `json:"subcategories"`
}

// Summary contains the aggregated view of one filtered operation list.
//
// Count and TotalValue are defined over the raw filtered list, independent
// of whether each operation's subcategory chain resolves. Buckets and
// Groups cover only resolvable operations; DroppedOperations counts the
// rest rather than hiding them entirely.
type Summary struct {
	Count             int      `json:"count"`
	TotalValue        int64    `json:"total_value"`
	DroppedOperations int      `json:"dropped_operations"`
	CategoryTotals    []Bucket `json:"category_totals"`
	SubcategoryTotals []Bucket `json:"subcategory_totals"`

	Groups []CategoryGroup `json:"groups"`
}
