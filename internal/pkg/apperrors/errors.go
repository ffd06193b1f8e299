package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrStaffIDExists      = errors.New("staff ID already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrStaffNotApproved = errors.New("staff account is not approved")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidRole      = errors.New("invalid role")
	ErrBadRequest       = errors.New("bad request")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewMissingFieldError reports an absent required field by name
func NewMissingFieldError(field string) error {
	return &CustomError{
		Err:     ErrMissingField,
		Message: field + " is required",
		Details: map[string]interface{}{"field": field},
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
