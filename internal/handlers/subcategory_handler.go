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

// SubcategoryHandler handles subcategory HTTP requests
type SubcategoryHandler struct {
	store services.LedgerStoreInterface
}

// NewSubcategoryHandler creates a new subcategory handler
func NewSubcategoryHandler(store services.LedgerStoreInterface) *SubcategoryHandler {
	return &SubcategoryHandler{store: store}
}

// ListSubcategories returns the current subcategory collection
func (h *SubcategoryHandler) ListSubcategories(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewListSubcategoriesResponse(h.store.Subcategories()))
}

// CreateSubcategory creates a new subcategory under a category
func (h *SubcategoryHandler) CreateSubcategory(c echo.Context) error {
	var req dto.CreateSubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	subcategory, err := h.store.CreateSubcategory(req.CategoryID, req.Name)
	if err != nil {
		return sendSubcategoryError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewSubcategoryResponse(*subcategory))
}

// UpdateSubcategory renames an existing subcategory
func (h *SubcategoryHandler) UpdateSubcategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.SubcategoryInvalidID)
	}

	var req dto.UpdateSubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.store.UpdateSubcategory(id, req.Name); err != nil {
		return sendSubcategoryError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Subcategory updated"})
}

// RemoveSubcategory deletes a subcategory and cascades to its operations
func (h *SubcategoryHandler) RemoveSubcategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.SubcategoryInvalidID)
	}

	if err := h.store.RemoveSubcategory(id); err != nil {
		return sendSubcategoryError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Subcategory removed"})
}

// ListOperationsOf returns the operations belonging to one subcategory
func (h *SubcategoryHandler) ListOperationsOf(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.SubcategoryInvalidID)
	}

	operations := h.store.OperationsOf(id)
	return c.JSON(http.StatusOK, dto.NewListOperationsResponse(operations, models.DateRange{}))
}

func sendSubcategoryError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, models.ErrSubcategoryNameRequired),
		stderrors.Is(err, models.ErrSubcategoryCategoryRequired):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	case stderrors.Is(err, repositories.ErrSubcategoryNotFound):
		return SendError(c, errors.SubcategoryNotFound)
	case stderrors.Is(err, repositories.ErrSubcategoryAlreadyExists):
		return SendError(c, errors.SubcategoryAlreadyExists)
	case stderrors.Is(err, repositories.ErrSubcategoryCategoryGone):
		return SendError(c, errors.CategoryNotFound)
	default:
		return SendSystemError(c, err)
	}
}
