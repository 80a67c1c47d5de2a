package services

import (
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"finledger/internal/models"
	"finledger/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

func TestLedgerStore(t *testing.T) {
	suite.Run(t, new(LedgerStoreSuite))
}

type LedgerStoreSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockCategoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	mockSubcategoryRepo *repository_mocks.MockSubcategoryRepositoryInterface
	mockOperationRepo   *repository_mocks.MockOperationRepositoryInterface
	store               LedgerStoreInterface
}

func (s *LedgerStoreSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCategoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.mockSubcategoryRepo = repository_mocks.NewMockSubcategoryRepositoryInterface(s.ctrl)
	s.mockOperationRepo = repository_mocks.NewMockOperationRepositoryInterface(s.ctrl)
	s.store = NewLedgerStore(
		s.mockCategoryRepo,
		s.mockSubcategoryRepo,
		s.mockOperationRepo,
		NewNoopMetrics(),
		slog.Default(),
	)
}

func (s *LedgerStoreSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LedgerStoreSuite) expectLoad(
	categories []models.Category,
	subcategories []models.Subcategory,
	operations []models.Operation,
) {
	s.mockCategoryRepo.EXPECT().List().Return(categories, nil)
	s.mockSubcategoryRepo.EXPECT().List().Return(subcategories, nil)
	s.mockOperationRepo.EXPECT().List().Return(operations, nil)
}

func (s *LedgerStoreSuite) loadFixture() {
	s.expectLoad(
		[]models.Category{
			{ID: 1, Name: "Food"},
			{ID: 2, Name: "Transport"},
		},
		[]models.Subcategory{
			{ID: 10, CategoryID: 1, Name: "Groceries"},
			{ID: 11, CategoryID: 1, Name: "Restaurants"},
			{ID: 12, CategoryID: 2, Name: "Fuel"},
		},
		[]models.Operation{
			{ID: 100, SubcategoryID: 10, Date: "2024-03-05", Value: 5000},
			{ID: 101, SubcategoryID: 11, Date: "2024-03-06", Value: 1500},
			{ID: 102, SubcategoryID: 12, Date: "2024-03-07", Value: 3000},
		},
	)
	s.Require().NoError(s.store.LoadAll())
}

func (s *LedgerStoreSuite) TestLoadAll_Success() {
	s.False(s.store.Ready())

	s.loadFixture()

	s.True(s.store.Ready())
	s.Empty(s.store.LastError())
	s.Len(s.store.Categories(), 2)
	s.Len(s.store.Subcategories(), 3)
	s.Len(s.store.Operations(), 3)
	s.Equal(uint64(1), s.store.Snapshot().Generation)
}

func (s *LedgerStoreSuite) TestLoadAll_FetchFailureInstallsNothing() {
	s.mockCategoryRepo.EXPECT().List().Return(nil, errors.New("backend down"))
	s.mockSubcategoryRepo.EXPECT().List().Return([]models.Subcategory{}, nil).MaxTimes(1)
	s.mockOperationRepo.EXPECT().List().Return([]models.Operation{}, nil).MaxTimes(1)

	err := s.store.LoadAll()

	s.Error(err)
	s.False(s.store.Ready())
	s.Contains(s.store.LastError(), "backend down")
	s.Empty(s.store.Categories())
}

func (s *LedgerStoreSuite) TestLoadAll_IsIdempotent() {
	s.loadFixture()
	s.loadFixture()

	s.True(s.store.Ready())
	s.Len(s.store.Categories(), 2)
	s.Equal(uint64(2), s.store.Snapshot().Generation)
}

func (s *LedgerStoreSuite) TestLoadAll_RecoveryClearsError() {
	s.mockCategoryRepo.EXPECT().List().Return(nil, errors.New("backend down"))
	s.mockSubcategoryRepo.EXPECT().List().Return([]models.Subcategory{}, nil).MaxTimes(1)
	s.mockOperationRepo.EXPECT().List().Return([]models.Operation{}, nil).MaxTimes(1)
	s.Error(s.store.LoadAll())

	s.loadFixture()
	s.True(s.store.Ready())
	s.Empty(s.store.LastError())
}

func (s *LedgerStoreSuite) TestLoadAll_StaleReloadDiscarded() {
	stale := []models.Category{{ID: 1, Name: "Stale"}}
	fresh := []models.Category{{ID: 2, Name: "Fresh"}}

	var calls int32
	s.mockCategoryRepo.EXPECT().List().Times(2).DoAndReturn(func() ([]models.Category, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			// a newer full reload starts and finishes while this fetch
			// is still in flight
			s.NoError(s.store.LoadAll())
			return stale, nil
		}
		return fresh, nil
	})
	s.mockSubcategoryRepo.EXPECT().List().Return([]models.Subcategory{}, nil).Times(2)
	s.mockOperationRepo.EXPECT().List().Return([]models.Operation{}, nil).Times(2)

	s.NoError(s.store.LoadAll())

	categories := s.store.Categories()
	s.Require().Len(categories, 1)
	s.Equal("Fresh", categories[0].Name)
}

func (s *LedgerStoreSuite) TestRefreshOperations_ReplacesOnlyOperations() {
	s.loadFixture()

	s.mockOperationRepo.EXPECT().List().Return([]models.Operation{
		{ID: 200, SubcategoryID: 10, Date: "2024-04-01", Value: 900},
	}, nil)

	s.NoError(s.store.RefreshOperations())

	s.Len(s.store.Categories(), 2)
	s.Len(s.store.Subcategories(), 3)
	s.Require().Len(s.store.Operations(), 1)
	s.Equal(int64(200), s.store.Operations()[0].ID)
}

func (s *LedgerStoreSuite) TestRefreshCategories_FailureLeavesSnapshot() {
	s.loadFixture()

	s.mockCategoryRepo.EXPECT().List().Return(nil, errors.New("backend down"))

	s.Error(s.store.RefreshCategories())
	s.Len(s.store.Categories(), 2)
}

func (s *LedgerStoreSuite) TestAccessors() {
	s.loadFixture()

	subcategories := s.store.SubcategoriesOf(1)
	s.Require().Len(subcategories, 2)
	s.Equal("Groceries", subcategories[0].Name)
	s.Equal("Restaurants", subcategories[1].Name)

	operations := s.store.OperationsOf(12)
	s.Require().Len(operations, 1)
	s.Equal(int64(102), operations[0].ID)

	s.Empty(s.store.SubcategoriesOf(99))
	s.Empty(s.store.OperationsOf(99))
}

func (s *LedgerStoreSuite) TestCreateCategory_ValidatesBeforeBackend() {
	_, err := s.store.CreateCategory("   ")
	s.ErrorIs(err, models.ErrCategoryNameRequired)
}

func (s *LedgerStoreSuite) TestCreateCategory_AppendsConfirmedRecord() {
	s.loadFixture()

	s.mockCategoryRepo.EXPECT().Create("Health").Return(&models.Category{ID: 3, Name: "Health"}, nil)

	category, err := s.store.CreateCategory("Health")
	s.NoError(err)
	s.Equal(int64(3), category.ID)

	categories := s.store.Categories()
	s.Require().Len(categories, 3)
	s.Equal("Health", categories[2].Name)
}

func (s *LedgerStoreSuite) TestCreateCategory_BackendFailureLeavesCollection() {
	s.loadFixture()

	s.mockCategoryRepo.EXPECT().Create("Health").Return(nil, errors.New("constraint violated"))

	_, err := s.store.CreateCategory("Health")
	s.Error(err)
	s.Len(s.store.Categories(), 2)
}

func (s *LedgerStoreSuite) TestUpdateCategory_ReplacesInPlace() {
	s.loadFixture()

	s.mockCategoryRepo.EXPECT().Update(int64(1), "Eating").Return(nil)

	s.NoError(s.store.UpdateCategory(1, "Eating"))

	categories := s.store.Categories()
	s.Equal("Eating", categories[0].Name)
	s.Equal("Transport", categories[1].Name)
}

func (s *LedgerStoreSuite) TestCreateSubcategory_Validates() {
	_, err := s.store.CreateSubcategory(0, "Groceries")
	s.ErrorIs(err, models.ErrSubcategoryCategoryRequired)

	_, err = s.store.CreateSubcategory(1, " ")
	s.ErrorIs(err, models.ErrSubcategoryNameRequired)
}

func (s *LedgerStoreSuite) TestCreateOperation_Validates() {
	_, err := s.store.CreateOperation(10, "2024-3-5", 100)
	s.ErrorIs(err, models.ErrOperationDateInvalid)

	_, err = s.store.CreateOperation(10, "2024-03-05", 0)
	s.ErrorIs(err, models.ErrOperationValueNotPositive)

	_, err = s.store.CreateOperation(0, "2024-03-05", 100)
	s.ErrorIs(err, models.ErrOperationSubcategoryRequired)
}

func (s *LedgerStoreSuite) TestCreateOperation_PrependsConfirmedRecord() {
	s.loadFixture()

	s.mockOperationRepo.EXPECT().Create(int64(10), "2024-04-01", int64(250)).
		Return(&models.Operation{ID: 200, SubcategoryID: 10, Date: "2024-04-01", Value: 250}, nil)

	operation, err := s.store.CreateOperation(10, "2024-04-01", 250)
	s.NoError(err)
	s.Equal(int64(200), operation.ID)

	operations := s.store.Operations()
	s.Require().Len(operations, 4)
	s.Equal(int64(200), operations[0].ID)
}

func (s *LedgerStoreSuite) TestUpdateOperation_ReplacesInPlace() {
	s.loadFixture()

	s.mockOperationRepo.EXPECT().Update(int64(100), int64(12), "2024-03-09", int64(4200)).Return(nil)

	s.NoError(s.store.UpdateOperation(100, 12, "2024-03-09", 4200))

	operations := s.store.Operations()
	s.Equal(int64(100), operations[0].ID)
	s.Equal(int64(12), operations[0].SubcategoryID)
	s.Equal("2024-03-09", operations[0].Date)
	s.Equal(int64(4200), operations[0].Value)
}

func (s *LedgerStoreSuite) TestRemoveOperation() {
	s.loadFixture()

	s.mockOperationRepo.EXPECT().Delete(int64(101)).Return(nil)

	s.NoError(s.store.RemoveOperation(101))

	operations := s.store.Operations()
	s.Require().Len(operations, 2)
	s.Equal(int64(100), operations[0].ID)
	s.Equal(int64(102), operations[1].ID)
}

func (s *LedgerStoreSuite) TestRemoveCategory_CascadesInOneStep() {
	s.loadFixture()

	s.mockCategoryRepo.EXPECT().Delete(int64(1)).Return(nil)

	s.NoError(s.store.RemoveCategory(1))

	snapshot := s.store.Snapshot()
	s.Require().Len(snapshot.Categories, 1)
	s.Equal(int64(2), snapshot.Categories[0].ID)
	s.Require().Len(snapshot.Subcategories, 1)
	s.Equal(int64(12), snapshot.Subcategories[0].ID)
	s.Require().Len(snapshot.Operations, 1)
	s.Equal(int64(102), snapshot.Operations[0].ID)

	// no remaining entity references a dead id
	for _, sub := range snapshot.Subcategories {
		s.NotNil(snapshot.CategoryByID(sub.CategoryID))
	}
	for _, op := range snapshot.Operations {
		s.NotNil(snapshot.SubcategoryByID(op.SubcategoryID))
	}
}

func (s *LedgerStoreSuite) TestRemoveSubcategory_CascadesToOperations() {
	s.loadFixture()

	s.mockSubcategoryRepo.EXPECT().Delete(int64(10)).Return(nil)

	s.NoError(s.store.RemoveSubcategory(10))

	snapshot := s.store.Snapshot()
	s.Len(snapshot.Categories, 2)
	s.Len(snapshot.Subcategories, 2)
	s.Require().Len(snapshot.Operations, 2)
	for _, op := range snapshot.Operations {
		s.NotEqual(int64(10), op.SubcategoryID)
	}
}

func (s *LedgerStoreSuite) TestRemoveCategory_BackendFailureLeavesEverything() {
	s.loadFixture()

	s.mockCategoryRepo.EXPECT().Delete(int64(1)).Return(errors.New("backend down"))

	s.Error(s.store.RemoveCategory(1))
	s.Len(s.store.Categories(), 2)
	s.Len(s.store.Subcategories(), 3)
	s.Len(s.store.Operations(), 3)
}

func (s *LedgerStoreSuite) TestMutationDoesNotDisturbHeldSnapshot() {
	s.loadFixture()
	held := s.store.Snapshot()

	s.mockOperationRepo.EXPECT().Delete(int64(100)).Return(nil)
	s.NoError(s.store.RemoveOperation(100))

	// the snapshot taken before the mutation is unchanged
	s.Len(held.Operations, 3)
	s.Equal(int64(100), held.Operations[0].ID)
	s.Len(s.store.Operations(), 2)
}
