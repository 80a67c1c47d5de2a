package handlers

import (
	stderrors "errors"
	"net/http"

	"finledger/internal/dto"
	"finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/repositories"
	"finledger/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	store services.LedgerStoreInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(store services.LedgerStoreInterface) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// ListCategories returns the current category collection
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewListCategoriesResponse(h.store.Categories()))
}

// CreateCategory creates a new category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.store.CreateCategory(req.Name)
	if err != nil {
		return sendCategoryError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCategoryResponse(*category))
}

// UpdateCategory renames an existing category
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.store.UpdateCategory(id, req.Name); err != nil {
		return sendCategoryError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Category updated"})
}

// RemoveCategory deletes a category and cascades to its subcategories and
// their operations
func (h *CategoryHandler) RemoveCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	if err := h.store.RemoveCategory(id); err != nil {
		return sendCategoryError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Category removed"})
}

// ListSubcategoriesOf returns the subcategories belonging to one category
func (h *CategoryHandler) ListSubcategoriesOf(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	return c.JSON(http.StatusOK, dto.NewListSubcategoriesResponse(h.store.SubcategoriesOf(id)))
}

func sendCategoryError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, models.ErrCategoryNameRequired):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	case stderrors.Is(err, repositories.ErrCategoryNotFound):
		return SendError(c, errors.CategoryNotFound)
	case stderrors.Is(err, repositories.ErrCategoryAlreadyExists):
		return SendError(c, errors.CategoryAlreadyExists)
	default:
		return SendSystemError(c, err)
	}
}
