package models

// Snapshot is an immutable view of the three ledger collections as installed
// by the entity store. Readers hold a snapshot for the duration of one
// computation pass; the store never mutates a snapshot it has handed out.
type Snapshot struct {
	Generation    uint64        `json:"generation"`
	Categories    []Category    `json:"categories"`
	Subcategories []Subcategory `json:"subcategories"`
	Operations    []Operation   `json:"operations"`
}

// CategoryByID returns the category with the given id, or nil.
func (s Snapshot) CategoryByID(id int64) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

// SubcategoryByID returns the subcategory with the given id, or nil.
func (s Snapshot) SubcategoryByID(id int64) *Subcategory {
	for i := range s.Subcategories {
		if s.Subcategories[i].ID == id {
			return &s.Subcategories[i]
		}
	}
	return nil
}

// SubcategoryIDsOf returns the set of subcategory ids belonging to the given
// category.
func (s Snapshot) SubcategoryIDsOf(categoryID int64) map[int64]struct{} {
	ids := make(map[int64]struct{})
	for _, sub := range s.Subcategories {
		if sub.CategoryID == categoryID {
			ids[sub.ID] = struct{}{}
		}
	}
	return ids
}
