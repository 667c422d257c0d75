package errors

import (
	"net/http"
	"strings"

	"petcare/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business error code so that copies made by WithDetails
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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
	// Validation-related errors. Raised locally, never after a network call.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		"",
	)

	// Authentication-related errors, one per fixed user-facing message
	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"AUTH_INVALID_EMAIL",
		"Email inválido",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_INVALID_CREDENTIALS",
		"Credenciales incorrectas",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"AUTH_USER_NOT_FOUND",
		"No existe una cuenta con este email.",
		"",
	)

	ErrEmailInUse = NewBaseError(
		http.StatusConflict,
		"AUTH_EMAIL_IN_USE",
		"El email ya se encuentra registrado",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"AUTH_WEAK_PASSWORD",
		"La contraseña es demasiado débil",
		"",
	)

	ErrAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_FAILED",
		"No fue posible iniciar sesión",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Debes iniciar sesión",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"No tienes permiso para acceder a este recurso",
		"",
	)

	// Store-related errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"El registro no existe",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"El servicio no está disponible, intenta nuevamente",
		"",
	)

	// External collaborator errors
	ErrUpstreamFailed = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_FAILED",
		"El servicio externo no respondió correctamente",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)
)

// NewValidationError builds a ValidationError carrying the failing fields
func NewValidationError(fields ...string) *BaseError {
	return ErrValidationFailed.WithDetails(strings.Join(fields, "; "))
}

// PartialFailureError reports a multi-step operation whose later step failed after
// earlier steps completed. Completed steps are not rolled back.
type PartialFailureError struct {
	operation string
	completed []string
	err       error
}

// NewPartialFailure creates a partial failure for operation; completed lists what
// was already applied (for example uploaded URLs) and err is the failing step's cause.
func NewPartialFailure(operation string, completed []string, err error) *PartialFailureError {
	return &PartialFailureError{
		operation: operation,
		completed: completed,
		err:       err,
	}
}

// Error implements the error interface
func (e *PartialFailureError) Error() string {
	return errors.Wrapf(e.err, "%s partially failed", e.operation).Error()
}

// Unwrap returns the failing step's cause
func (e *PartialFailureError) Unwrap() error {
	return e.err
}

// Completed returns the results of the steps that did succeed
func (e *PartialFailureError) Completed() []string {
	return e.completed
}

// HTTPCode returns the HTTP status code
func (e *PartialFailureError) HTTPCode() int {
	return http.StatusMultiStatus
}

// ErrorCode returns the business error code
func (e *PartialFailureError) ErrorCode() string {
	return "PARTIAL_FAILURE"
}

// Message returns the user-friendly error message
func (e *PartialFailureError) Message() string {
	return "La operación se completó parcialmente"
}

// Details returns detailed error information
func (e *PartialFailureError) Details() string {
	return e.operation + ": " + strings.Join(e.completed, ", ")
}
