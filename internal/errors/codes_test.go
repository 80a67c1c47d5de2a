package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorMessage_KnownCodes(t *testing.T) {
	testCases := []struct {
		code     ErrorCode
		expected string
	}{
		{ValidationGeneral, "Validation failed"},
		{CategoryNotFound, "Category not found"},
		{SubcategoryNotFound, "Subcategory not found"},
		{OperationNotFound, "Operation not found"},
		{LedgerNotReady, "Ledger has not been loaded yet"},
		{SystemRateLimitExceeded, "Rate limit exceeded. Please try again later"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, GetErrorMessage(tc.code))
	}
}

func TestGetErrorMessage_UnknownCode(t *testing.T) {
	assert.Equal(t, "An error occurred", GetErrorMessage("NOPE_001"))
}

func TestIsValidErrorCode(t *testing.T) {
	assert.True(t, IsValidErrorCode(CategoryAlreadyExists))
	assert.True(t, IsValidErrorCode(SystemInternalError))
	assert.False(t, IsValidErrorCode("NOPE_001"))
	assert.False(t, IsValidErrorCode(""))
}
