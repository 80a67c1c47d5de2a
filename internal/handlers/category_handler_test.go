package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finledger/internal/dto"
	"finledger/internal/models"
	"finledger/internal/repositories"
	"finledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *service_mocks.MockLedgerStoreInterface
	handler   *CategoryHandler
	echo      *echo.Echo
}

func (s *CategoryHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = service_mocks.NewMockLedgerStoreInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockStore)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *CategoryHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (s *CategoryHandlerTestSuite) jsonContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *CategoryHandlerTestSuite) TestListCategories() {
	s.mockStore.EXPECT().Categories().Return([]models.Category{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Transport"},
	})

	c, rec := s.jsonContext(http.MethodGet, "/api/v1/categories", "")

	s.NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListCategoriesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Categories, 2)
	s.Equal("Food", response.Categories[0].Name)
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_Success() {
	s.mockStore.EXPECT().CreateCategory("Health").
		Return(&models.Category{ID: 3, Name: "Health"}, nil)

	c, rec := s.jsonContext(http.MethodPost, "/api/v1/categories", `{"name":"Health"}`)

	s.NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.CategoryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(int64(3), response.ID)
	s.Equal("Health", response.Name)
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_BlankNameRejectedBeforeStore() {
	s.mockStore.EXPECT().CreateCategory(" ").
		Return(nil, models.ErrCategoryNameRequired)

	c, rec := s.jsonContext(http.MethodPost, "/api/v1/categories", `{"name":" "}`)

	s.NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_DuplicateConflict() {
	s.mockStore.EXPECT().CreateCategory("Food").
		Return(nil, repositories.ErrCategoryAlreadyExists)

	c, rec := s.jsonContext(http.MethodPost, "/api/v1/categories", `{"name":"Food"}`)

	s.NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusConflict, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CATEGORY_002", response.Error.Code)
}

func (s *CategoryHandlerTestSuite) TestUpdateCategory_Success() {
	s.mockStore.EXPECT().UpdateCategory(int64(1), "Eating").Return(nil)

	c, rec := s.jsonContext(http.MethodPut, "/api/v1/categories/1", `{"name":"Eating"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.NoError(s.handler.UpdateCategory(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestUpdateCategory_InvalidID() {
	c, rec := s.jsonContext(http.MethodPut, "/api/v1/categories/abc", `{"name":"Eating"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	s.NoError(s.handler.UpdateCategory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestUpdateCategory_NotFound() {
	s.mockStore.EXPECT().UpdateCategory(int64(99), "Ghost").
		Return(repositories.ErrCategoryNotFound)

	c, rec := s.jsonContext(http.MethodPut, "/api/v1/categories/99", `{"name":"Ghost"}`)
	c.SetParamNames("id")
	c.SetParamValues("99")

	s.NoError(s.handler.UpdateCategory(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestRemoveCategory_Success() {
	s.mockStore.EXPECT().RemoveCategory(int64(1)).Return(nil)

	c, rec := s.jsonContext(http.MethodDelete, "/api/v1/categories/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.NoError(s.handler.RemoveCategory(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestRemoveCategory_BackendFailure() {
	s.mockStore.EXPECT().RemoveCategory(int64(1)).Return(errors.New("backend down"))

	c, rec := s.jsonContext(http.MethodDelete, "/api/v1/categories/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.NoError(s.handler.RemoveCategory(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	// internal details stay out of the response body
	s.NotContains(rec.Body.String(), "backend down")
}

func (s *CategoryHandlerTestSuite) TestListSubcategoriesOf() {
	s.mockStore.EXPECT().SubcategoriesOf(int64(1)).Return([]models.Subcategory{
		{ID: 10, CategoryID: 1, Name: "Groceries"},
	})

	c, rec := s.jsonContext(http.MethodGet, "/api/v1/categories/1/subcategories", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.NoError(s.handler.ListSubcategoriesOf(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListSubcategoriesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Subcategories, 1)
	s.Equal("Groceries", response.Subcategories[0].Name)
}
