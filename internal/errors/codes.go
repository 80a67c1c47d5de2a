package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
	ValidationScopeConflict ErrorCode = "VALIDATION_006"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInvalidID     ErrorCode = "CATEGORY_003"
)

// Subcategory error codes (SUBCATEGORY_*)
const (
	SubcategoryNotFound      ErrorCode = "SUBCATEGORY_001"
	SubcategoryAlreadyExists ErrorCode = "SUBCATEGORY_002"
	SubcategoryInvalidID     ErrorCode = "SUBCATEGORY_003"
)

// Operation error codes (OPERATION_*)
const (
	OperationNotFound      ErrorCode = "OPERATION_001"
	OperationInvalidValue  ErrorCode = "OPERATION_002"
	OperationInvalidDate   ErrorCode = "OPERATION_003"
	OperationInvalidID     ErrorCode = "OPERATION_004"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerNotReady   ErrorCode = "LEDGER_001"
	LedgerLoadFailed ErrorCode = "LEDGER_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidAmount: "Amount must be a positive number of minor currency units",
	ValidationScopeConflict: "Category and subcategory filters are mutually exclusive",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInvalidID:     "Invalid category id",

	// Subcategory errors
	SubcategoryNotFound:      "Subcategory not found",
	SubcategoryAlreadyExists: "A subcategory with this name already exists in the category",
	SubcategoryInvalidID:     "Invalid subcategory id",

	// Operation errors
	OperationNotFound:     "Operation not found",
	OperationInvalidValue: "Operation value must be positive",
	OperationInvalidDate:  "Operation date must be in YYYY-MM-DD form",
	OperationInvalidID:    "Invalid operation id",

	// Ledger errors
	LedgerNotReady:   "Ledger has not been loaded yet",
	LedgerLoadFailed: "Failed to load ledger data from storage",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
