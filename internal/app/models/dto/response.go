package dto

import (
	"time"

	"github.com/ozank/collegium/internal/pkg/results"
)

// APIResponse is the JSON envelope returned by every endpoint: payload,
// success flag, optional message and the operation's error list with
// severities.
type APIResponse struct {
	Success   bool                 `json:"success"`
	Message   string               `json:"message,omitempty"`
	Data      interface{}          `json:"data,omitempty"`
	Errors    []results.ErrorEntry `json:"errors,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

// NewSuccessResponse wraps a payload in a successful envelope.
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewFailureResponse wraps an operation's error list in a failed envelope.
func NewFailureResponse(op results.Operation, message string) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   message,
		Errors:    op.Errors,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse builds a failed envelope with a single error entry.
func NewErrorResponse(code results.Code, message string, level results.Level) APIResponse {
	return APIResponse{
		Success:   false,
		Errors:    []results.ErrorEntry{{Code: code, Message: message, Level: level}},
		Timestamp: time.Now(),
	}
}

// FieldError reports a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationResponse builds a failed envelope carrying field-level
// validation messages.
func NewValidationResponse(fieldErrors []FieldError) APIResponse {
	entries := make([]results.ErrorEntry, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		entries = append(entries, results.ErrorEntry{
			Code:    results.CodeValidationFailed,
			Message: fe.Field + ": " + fe.Message,
			Level:   results.LevelImportant,
		})
	}
	return APIResponse{
		Success:   false,
		Message:   "validation failed",
		Errors:    entries,
		Timestamp: time.Now(),
	}
}
