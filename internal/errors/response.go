package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorResponse represents the standardized API error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
// Optional details can be added using functional options
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation error response with field-specific error details
// fieldErrors is a map of field names to their error messages
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}

	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(ValidationGeneral),
			Message: GetErrorMessage(ValidationGeneral),
			Details: details,
			TraceID: traceID,
		},
	}
}

// WrapSystemError wraps an internal error with a generic system error message
// This prevents exposure of internal implementation details to clients
// The internal error is returned separately for server-side logging
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(SystemInternalError),
			Message: GetErrorMessage(SystemInternalError),
			Details: []string{},
			TraceID: traceID,
		},
	}

	return response, err
}

// GetHTTPStatus maps the response's error code to an HTTP status code
func (er *ErrorResponse) GetHTTPStatus() int {
	code := ErrorCode(er.Error.Code)

	switch {
	case strings.HasPrefix(er.Error.Code, "VALIDATION_"):
		return http.StatusBadRequest
	case code == CategoryNotFound, code == SubcategoryNotFound, code == OperationNotFound:
		return http.StatusNotFound
	case code == CategoryAlreadyExists, code == SubcategoryAlreadyExists:
		return http.StatusConflict
	case code == CategoryInvalidID, code == SubcategoryInvalidID, code == OperationInvalidID,
		code == OperationInvalidValue, code == OperationInvalidDate:
		return http.StatusBadRequest
	case code == LedgerNotReady:
		return http.StatusConflict
	case code == LedgerLoadFailed:
		return http.StatusBadGateway
	case code == SystemRateLimitExceeded:
		return http.StatusTooManyRequests
	case code == SystemServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
