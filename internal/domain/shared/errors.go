package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error naming the offending field
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: message,
		Field:   field,
	}
}

// NewConflictError creates a retryable conflict error
func NewConflictError(message string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: message}
}

// NewReferentialIntegrityError creates an error for dependency-order violations
func NewReferentialIntegrityError(message string) *DomainError {
	return &DomainError{Code: CodeReferentialIntegrity, Message: message}
}

// NewInvalidStateError creates an error for lifecycle-order violations
func NewInvalidStateError(message string) *DomainError {
	return &DomainError{Code: CodeInvalidState, Message: message}
}

// Error code values carried by DomainError. All of them are recoverable by the
// caller: retry (CONFLICT), fix the input (VALIDATION_ERROR), purge or restore
// dependents first (REFERENTIAL_INTEGRITY), or pick another target (NOT_FOUND).
const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeConflict             = "CONFLICT"
	CodeReferentialIntegrity = "REFERENTIAL_INTEGRITY"
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidState         = "INVALID_STATE"
)

// Common domain errors
var (
	ErrNotFound      = NewDomainError(CodeNotFound, "Resource not found")
	ErrCodeExhausted = NewConflictError("Document code allocation retries exhausted")
	ErrInvalidState  = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
)
