package services

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"finledger/internal/models"
)

type aggregationService struct {
	metrics MetricsRecorderInterface
}

// NewAggregationService creates a new AggregationServiceInterface instance
func NewAggregationService(metrics MetricsRecorderInterface) AggregationServiceInterface {
	return &aggregationService{
		metrics: metrics,
	}
}

// Summarize computes scalar statistics, per-bucket totals and the grouped
// display tree for one filtered operation list. Count and TotalValue cover
// the raw list; operations whose subcategory or category cannot be resolved
// against the snapshot are dropped from buckets and groups and counted in
// DroppedOperations instead of raising.
func (s *aggregationService) Summarize(snapshot models.Snapshot, operations []models.Operation) *models.Summary {
	start := time.Now()

	summary := &models.Summary{
		Count:             len(operations),
		CategoryTotals:    []models.Bucket{},
		SubcategoryTotals: []models.Bucket{},
		Groups:            []models.CategoryGroup{},
	}

	categoryTotals := map[int64]int64{}
	subcategoryTotals := map[int64]int64{}
	var categoryOrder, subcategoryOrder []int64

	// category id -> subcategory id -> operations, preserving input order
	grouped := map[int64]map[int64][]models.Operation{}

	for _, op := range operations {
		summary.TotalValue += op.Value

		subcategory := snapshot.SubcategoryByID(op.SubcategoryID)
		if subcategory == nil {
			summary.DroppedOperations++
			continue
		}
		category := snapshot.CategoryByID(subcategory.CategoryID)
		if category == nil {
			summary.DroppedOperations++
			continue
		}

		if _, seen := categoryTotals[category.ID]; !seen {
			categoryOrder = append(categoryOrder, category.ID)
			grouped[category.ID] = map[int64][]models.Operation{}
		}
		categoryTotals[category.ID] += op.Value

		if _, seen := subcategoryTotals[subcategory.ID]; !seen {
			subcategoryOrder = append(subcategoryOrder, subcategory.ID)
		}
		subcategoryTotals[subcategory.ID] += op.Value

		grouped[category.ID][subcategory.ID] = append(grouped[category.ID][subcategory.ID], op)
	}

	for _, id := range categoryOrder {
		summary.CategoryTotals = append(summary.CategoryTotals, models.Bucket{
			ID:         id,
			Name:       snapshot.CategoryByID(id).Name,
			Total:      categoryTotals[id],
			Percentage: percentage(categoryTotals[id], summary.TotalValue),
		})
	}
	for _, id := range subcategoryOrder {
		summary.SubcategoryTotals = append(summary.SubcategoryTotals, models.Bucket{
			ID:         id,
			Name:       snapshot.SubcategoryByID(id).Name,
			Total:      subcategoryTotals[id],
			Percentage: percentage(subcategoryTotals[id], summary.TotalValue),
		})
	}

	// Descending by total; stable keeps encounter order on ties.
	sortBucketsByTotal(summary.CategoryTotals)
	sortBucketsByTotal(summary.SubcategoryTotals)

	summary.Groups = buildGroups(snapshot, grouped)

	if summary.DroppedOperations > 0 {
		slog.Warn("dropped operations with unresolvable references from summary",
			"dropped", summary.DroppedOperations,
			"count", summary.Count)
		s.metrics.AddDroppedOperations(summary.DroppedOperations)
	}
	s.metrics.RecordSummaryDuration(time.Since(start))

	return summary
}

func buildGroups(snapshot models.Snapshot, grouped map[int64]map[int64][]models.Operation) []models.CategoryGroup {
	groups := make([]models.CategoryGroup, 0, len(grouped))
	for categoryID, bySubcategory := range grouped {
		group := models.CategoryGroup{
			Category:      *snapshot.CategoryByID(categoryID),
			Subcategories: make([]models.SubcategoryGroup, 0, len(bySubcategory)),
		}
		for subcategoryID, ops := range bySubcategory {
			group.Subcategories = append(group.Subcategories, models.SubcategoryGroup{
				Subcategory: *snapshot.SubcategoryByID(subcategoryID),
				Operations:  ops,
			})
		}
		sort.Slice(group.Subcategories, func(i, j int) bool {
			return compareNames(group.Subcategories[i].Subcategory.Name, group.Subcategories[j].Subcategory.Name) < 0
		})
		groups = append(groups, group)
	}

	sort.Slice(groups, func(i, j int) bool {
		return compareNames(groups[i].Category.Name, groups[j].Category.Name) < 0
	})

	return groups
}

func sortBucketsByTotal(buckets []models.Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Total > buckets[j].Total
	})
}

func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}

// compareNames orders names case-insensitively first, with a case-sensitive
// tiebreak so equal-ignoring-case names still sort deterministically.
func compareNames(a, b string) int {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		if la < lb {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
