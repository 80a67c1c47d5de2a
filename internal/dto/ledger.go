package dto

import (
	"finledger/internal/models"
)

// LedgerResponse is the full snapshot plus the store's ready/error state
type LedgerResponse struct {
	Ready         bool                  `json:"ready"`
	Error         string                `json:"error,omitempty"`
	Generation    uint64                `json:"generation"`
	Categories    []CategoryResponse    `json:"categories"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
	Operations    []OperationResponse   `json:"operations"`
}

// NewLedgerResponse converts a snapshot and store state to the ledger response shape
func NewLedgerResponse(snapshot models.Snapshot, ready bool, lastError string) LedgerResponse {
	response := LedgerResponse{
		Ready:         ready,
		Error:         lastError,
		Generation:    snapshot.Generation,
		Categories:    NewListCategoriesResponse(snapshot.Categories).Categories,
		Subcategories: NewListSubcategoriesResponse(snapshot.Subcategories).Subcategories,
		Operations:    make([]OperationResponse, 0, len(snapshot.Operations)),
	}
	for _, operation := range snapshot.Operations {
		response.Operations = append(response.Operations, NewOperationResponse(operation))
	}
	return response
}

// BucketResponse represents one aggregated total with its percentage share
type BucketResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Total      int64   `json:"total"`
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// SubcategoryGroupResponse pairs a subcategory with its operations
type SubcategoryGroupResponse struct {
	Subcategory SubcategoryResponse `json:"subcategory"`
	Operations  []OperationResponse `json:"operations"`
}

// CategoryGroupResponse is one node of the two-level display tree
type CategoryGroupResponse struct {
	Category      CategoryResponse           `json:"category"`
	Subcategories []SubcategoryGroupResponse `json:"subcategories"`
}

// OverviewResponse carries whole-ledger counters alongside a summary
type OverviewResponse struct {
	TotalCategories    int `json:"total_categories"`
	TotalSubcategories int `json:"total_subcategories"`
	TotalOperations    int `json:"total_operations"`
}

// SummaryResponse is the aggregated view of one filtered operation list
type SummaryResponse struct {
	Range             models.DateRange        `json:"range"`
	Count             int                     `json:"count"`
	TotalValue        int64                   `json:"total_value"`
	TotalAmount       string                  `json:"total_amount"`
	DroppedOperations int                     `json:"dropped_operations"`
	CategoryTotals    []BucketResponse        `json:"category_totals"`
	SubcategoryTotals []BucketResponse        `json:"subcategory_totals"`
	Groups            []CategoryGroupResponse `json:"groups"`
	Overview          OverviewResponse        `json:"overview"`
}

// NewSummaryResponse converts a summary to its response shape
func NewSummaryResponse(summary *models.Summary, dateRange models.DateRange, snapshot models.Snapshot) SummaryResponse {
	response := SummaryResponse{
		Range:             dateRange,
		Count:             summary.Count,
		TotalValue:        summary.TotalValue,
		TotalAmount:       MinorUnitsToAmount(summary.TotalValue),
		DroppedOperations: summary.DroppedOperations,
		CategoryTotals:    newBucketResponses(summary.CategoryTotals),
		SubcategoryTotals: newBucketResponses(summary.SubcategoryTotals),
		Groups:            make([]CategoryGroupResponse, 0, len(summary.Groups)),
		Overview: OverviewResponse{
			TotalCategories:    len(snapshot.Categories),
			TotalSubcategories: len(snapshot.Subcategories),
			TotalOperations:    len(snapshot.Operations),
		},
	}

	for _, group := range summary.Groups {
		groupResponse := CategoryGroupResponse{
			Category:      NewCategoryResponse(group.Category),
			Subcategories: make([]SubcategoryGroupResponse, 0, len(group.Subcategories)),
		}
		for _, subgroup := range group.Subcategories {
			subgroupResponse := SubcategoryGroupResponse{
				Subcategory: NewSubcategoryResponse(subgroup.Subcategory),
				Operations:  make([]OperationResponse, 0, len(subgroup.Operations)),
			}
			for _, operation := range subgroup.Operations {
				subgroupResponse.Operations = append(subgroupResponse.Operations, NewOperationResponse(operation))
			}
			groupResponse.Subcategories = append(groupResponse.Subcategories, subgroupResponse)
		}
		response.Groups = append(response.Groups, groupResponse)
	}

	return response
}

func newBucketResponses(buckets []models.Bucket) []BucketResponse {
	responses := make([]BucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		responses = append(responses, BucketResponse{
			ID:         bucket.ID,
			Name:       bucket.Name,
			Total:      bucket.Total,
			Amount:     MinorUnitsToAmount(bucket.Total),
			Percentage: bucket.Percentage,
		})
	}
	return responses
}
