package dto

import (
	"finledger/internal/models"

	"github.com/shopspring/decimal"
)

// CreateOperationRequest is the payload for creating an operation. Value is
// an amount in minor currency units.
type CreateOperationRequest struct {
	SubcategoryID int64  `json:"subcategory_id" validate:"required,gt=0"`
	Date          string `json:"date" validate:"required,ledger_date"`
	Value         int64  `json:"value" validate:"required,positive_amount"`
}

// UpdateOperationRequest is the payload for replacing an operation
type UpdateOperationRequest struct {
	SubcategoryID int64  `json:"subcategory_id" validate:"required,gt=0"`
	Date          string `json:"date" validate:"required,ledger_date"`
	Value         int64  `json:"value" validate:"required,positive_amount"`
}

// FilterQuery selects the time range and scope for filtered endpoints.
// CategoryID and SubcategoryID are mutually exclusive; From/To apply to the
// custom period only.
type FilterQuery struct {
	Period        string `query:"period" validate:"omitempty,period"`
	From          string `query:"from" validate:"omitempty,ledger_date"`
	To            string `query:"to" validate:"omitempty,ledger_date"`
	CategoryID    int64  `query:"category_id" validate:"omitempty,gt=0"`
	SubcategoryID int64  `query:"subcategory_id" validate:"omitempty,gt=0"`
}

// OperationResponse represents an operation in API responses. Amount is the
// decimal display form of Value (minor units shifted two places).
type OperationResponse struct {
	ID            int64  `json:"id"`
	SubcategoryID int64  `json:"subcategory_id"`
	Date          string `json:"date"`
	Value         int64  `json:"value"`
	Amount        string `json:"amount"`
}

// ListOperationsResponse represents the response for listing operations
type ListOperationsResponse struct {
	Operations []OperationResponse `json:"operations"`
	Range      models.DateRange    `json:"range"`
}

// NewOperationResponse converts an operation model to its response shape
func NewOperationResponse(operation models.Operation) OperationResponse {
	return OperationResponse{
		ID:            operation.ID,
		SubcategoryID: operation.SubcategoryID,
		Date:          operation.Date,
		Value:         operation.Value,
		Amount:        MinorUnitsToAmount(operation.Value),
	}
}

// NewListOperationsResponse converts an operation collection to its response shape
func NewListOperationsResponse(operations []models.Operation, dateRange models.DateRange) ListOperationsResponse {
	response := ListOperationsResponse{
		Operations: make([]OperationResponse, 0, len(operations)),
		Range:      dateRange,
	}
	for _, operation := range operations {
		response.Operations = append(response.Operations, NewOperationResponse(operation))
	}
	return response
}

// MinorUnitsToAmount renders an integer amount of minor currency units as a
// fixed two-decimal string, e.g. 5000 -> "50.00".
func MinorUnitsToAmount(value int64) string {
	return decimal.New(value, -2).StringFixed(2)
}
