package errors

import (
	"net/http"

	"atelier/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"Username or email address is already registered",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_INACTIVE",
		"Account has been deactivated",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username/email or password",
		"",
	)

	ErrInvalidOrExpiredToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_OR_EXPIRED_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Content-related errors
	ErrArticleNotFound = NewBaseError(
		http.StatusNotFound,
		"ARTICLE_NOT_FOUND",
		"Article not found",
		"",
	)

	ErrProjectNotFound = NewBaseError(
		http.StatusNotFound,
		"PROJECT_NOT_FOUND",
		"Project not found",
		"",
	)

	ErrOfferingNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFERING_NOT_FOUND",
		"Offering not found",
		"",
	)

	ErrInquiryNotFound = NewBaseError(
		http.StatusNotFound,
		"INQUIRY_NOT_FOUND",
		"Inquiry not found",
		"",
	)

	ErrSlugAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SLUG_ALREADY_EXISTS",
		"Slug is already in use",
		"",
	)

	// Media-related errors
	ErrUnsupportedMediaType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_MEDIA_TYPE",
		"Unsupported content type for upload",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
