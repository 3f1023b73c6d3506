package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeUnknown, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeTokenInvalid, http.StatusUnauthorized},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeConcurrencyConflict, http.StatusConflict},
		{"ALREADY_FULFILLED", http.StatusBadRequest},
		{"REQUEST_CANCELLED", http.StatusBadRequest},
		{"BLOOD_GROUP_MISMATCH", http.StatusBadRequest},
		{"LOCATION_MISMATCH", http.StatusBadRequest},
		{"ROLE_NOT_TOGGLABLE", http.StatusBadRequest},
		{"INVALID_BLOOD_GROUP", http.StatusBadRequest},
		{"INVALID_URGENCY", http.StatusBadRequest},
		// Unknown code should return 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestResponseShapes(t *testing.T) {
	success := NewSuccessResponse(map[string]string{"key": "value"})
	assert.True(t, success.Success)
	assert.NotNil(t, success.Data)
	assert.Nil(t, success.Error)

	failure := NewErrorResponse(ErrCodeNotFound, "Request not found")
	assert.False(t, failure.Success)
	assert.Nil(t, failure.Data)
	assert.Equal(t, ErrCodeNotFound, failure.Error.Code)
	assert.Equal(t, "Request not found", failure.Error.Message)

	withID := NewErrorResponseWithRequestID(ErrCodeInternal, "boom", "req-123")
	assert.Equal(t, "req-123", withID.Error.RequestID)

	validation := NewValidationErrorResponse("Validation failed", "req-456", []ValidationDetail{
		{Field: "blood_group", Message: "must be a valid blood group"},
	})
	assert.Equal(t, ErrCodeValidation, validation.Error.Code)
	assert.Len(t, validation.Error.Details, 1)
}
