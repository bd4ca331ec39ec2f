package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Account errors
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// Student errors
var (
	ErrStudentNotFound       = errors.New("student not found")
	ErrStudentCodeExists     = errors.New("student code already exists")
	ErrCrucialInfoGeneration = errors.New("failed to generate student crucial information")
)

// Course errors
var (
	ErrInvalidSemester = errors.New("semester must be 1 or 2")
)

// Query errors
var (
	ErrUnknownField    = errors.New("unknown filter field")
	ErrUnknownRelation = errors.New("unknown include relation")
	ErrInvalidFilter   = errors.New("invalid filter expression")
)

// CustomError carries a message on top of a wrapped sentinel.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
