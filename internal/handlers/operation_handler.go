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

// OperationHandler handles operation HTTP requests, including the filtered
// list and summary views
type OperationHandler struct {
	store       services.LedgerStoreInterface
	aggregation services.AggregationServiceInterface
}

// NewOperationHandler creates a new operation handler
func NewOperationHandler(
	store services.LedgerStoreInterface,
	aggregation services.AggregationServiceInterface,
) *OperationHandler {
	return &OperationHandler{
		store:       store,
		aggregation: aggregation,
	}
}

// ListOperations returns the operations matching the period and scope query
func (h *OperationHandler) ListOperations(c echo.Context) error {
	if !h.store.Ready() {
		return SendError(c, errors.LedgerNotReady)
	}

	var query dto.FilterQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return err
	}

	dateRange, scope, err := resolveFilter(query)
	if err != nil {
		return SendError(c, errors.ValidationScopeConflict)
	}

	snapshot := h.store.Snapshot()
	filtered := services.FilterOperations(snapshot, dateRange, scope)
	return c.JSON(http.StatusOK, dto.NewListOperationsResponse(filtered, dateRange))
}

// GetSummary filters and aggregates operations for the period and scope query
func (h *OperationHandler) GetSummary(c echo.Context) error {
	if !h.store.Ready() {
		return SendError(c, errors.LedgerNotReady)
	}

	var query dto.FilterQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return err
	}

	dateRange, scope, err := resolveFilter(query)
	if err != nil {
		return SendError(c, errors.ValidationScopeConflict)
	}

	snapshot := h.store.Snapshot()
	filtered := services.FilterOperations(snapshot, dateRange, scope)
	summary := h.aggregation.Summarize(snapshot, filtered)
	return c.JSON(http.StatusOK, dto.NewSummaryResponse(summary, dateRange, snapshot))
}

// CreateOperation creates a new operation
func (h *OperationHandler) CreateOperation(c echo.Context) error {
	var req dto.CreateOperationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	operation, err := h.store.CreateOperation(req.SubcategoryID, req.Date, req.Value)
	if err != nil {
		return sendOperationError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewOperationResponse(*operation))
}

// UpdateOperation replaces an existing operation
func (h *OperationHandler) UpdateOperation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.OperationInvalidID)
	}

	var req dto.UpdateOperationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.store.UpdateOperation(id, req.SubcategoryID, req.Date, req.Value); err != nil {
		return sendOperationError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Operation updated"})
}

// RemoveOperation deletes an operation
func (h *OperationHandler) RemoveOperation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.OperationInvalidID)
	}

	if err := h.store.RemoveOperation(id); err != nil {
		return sendOperationError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Operation removed"})
}

func sendOperationError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, models.ErrOperationValueNotPositive):
		return SendError(c, errors.OperationInvalidValue)
	case stderrors.Is(err, models.ErrOperationDateInvalid):
		return SendError(c, errors.OperationInvalidDate)
	case stderrors.Is(err, models.ErrOperationSubcategoryRequired):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	case stderrors.Is(err, repositories.ErrOperationNotFound):
		return SendError(c, errors.OperationNotFound)
	case stderrors.Is(err, repositories.ErrOperationSubcategoryGone):
		return SendError(c, errors.SubcategoryNotFound)
	default:
		return SendSystemError(c, err)
	}
}
