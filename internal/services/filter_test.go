package services

import (
	"testing"

	"finledger/internal/models"

	"github.com/stretchr/testify/suite"
)

func TestFilter(t *testing.T) {
	suite.Run(t, new(FilterSuite))
}

type FilterSuite struct {
	suite.Suite
	snapshot models.Snapshot
}

func (s *FilterSuite) SetupTest() {
	s.snapshot = models.Snapshot{
		Categories: []models.Category{
			{ID: 1, Name: "Food"},
			{ID: 2, Name: "Transport"},
		},
		Subcategories: []models.Subcategory{
			{ID: 10, CategoryID: 1, Name: "Groceries"},
			{ID: 11, CategoryID: 1, Name: "Restaurants"},
			{ID: 12, CategoryID: 2, Name: "Fuel"},
		},
		Operations: []models.Operation{
			{ID: 100, SubcategoryID: 10, Date: "2024-03-05", Value: 5000},
			{ID: 101, SubcategoryID: 12, Date: "2024-03-20", Value: 3000},
			{ID: 102, SubcategoryID: 11, Date: "2024-02-28", Value: 1500},
			{ID: 103, SubcategoryID: 10, Date: "2024-03-31", Value: 2000},
		},
	}
}

func (s *FilterSuite) operationIDs(operations []models.Operation) []int64 {
	ids := make([]int64, 0, len(operations))
	for _, op := range operations {
		ids = append(ids, op.ID)
	}
	return ids
}

func (s *FilterSuite) TestFilterOperations_UnboundedNoScopeReturnsAllInOrder() {
	got := FilterOperations(s.snapshot, models.DateRange{}, models.Scope{})
	s.Equal([]int64{100, 101, 102, 103}, s.operationIDs(got))
}

func (s *FilterSuite) TestFilterOperations_RangeBoundsAreInclusive() {
	got := FilterOperations(s.snapshot, models.DateRange{From: "2024-03-05", To: "2024-03-31"}, models.Scope{})
	s.Equal([]int64{100, 101, 103}, s.operationIDs(got))
}

func (s *FilterSuite) TestFilterOperations_OpenEndedRanges() {
	fromOnly := FilterOperations(s.snapshot, models.DateRange{From: "2024-03-06"}, models.Scope{})
	s.Equal([]int64{101, 103}, s.operationIDs(fromOnly))

	toOnly := FilterOperations(s.snapshot, models.DateRange{To: "2024-03-05"}, models.Scope{})
	s.Equal([]int64{100, 102}, s.operationIDs(toOnly))
}

func (s *FilterSuite) TestFilterOperations_InvertedRangeYieldsEmpty() {
	got := FilterOperations(s.snapshot, models.DateRange{From: "2024-04-01", To: "2024-03-01"}, models.Scope{})
	s.Empty(got)
}

func (s *FilterSuite) TestFilterOperations_CategoryScope() {
	got := FilterOperations(s.snapshot, models.DateRange{}, models.Scope{CategoryID: 1})
	s.Equal([]int64{100, 102, 103}, s.operationIDs(got))
}

func (s *FilterSuite) TestFilterOperations_SubcategoryScope() {
	got := FilterOperations(s.snapshot, models.DateRange{}, models.Scope{SubcategoryID: 10})
	s.Equal([]int64{100, 103}, s.operationIDs(got))
}

func (s *FilterSuite) TestFilterOperations_RangeAndScopeIntersect() {
	got := FilterOperations(s.snapshot,
		models.DateRange{From: "2024-03-01", To: "2024-03-31"},
		models.Scope{CategoryID: 1})
	s.Equal([]int64{100, 103}, s.operationIDs(got))
}

func (s *FilterSuite) TestFilterOperations_CategoryWithoutSubcategoriesYieldsEmpty() {
	got := FilterOperations(s.snapshot, models.DateRange{}, models.Scope{CategoryID: 99})
	s.Empty(got)
}
