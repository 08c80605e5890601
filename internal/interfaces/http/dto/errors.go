package dto

import "net/http"

// Error codes returned on the wire. Domain errors carry the same codes, so
// handlers can map them to HTTP statuses without translation.
const (
	// ErrCodeValidation is used when input fails domain or binding validation
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeConflict is used when a uniqueness guarantee cannot be met
	ErrCodeConflict = "CONFLICT"
	// ErrCodeReferentialIntegrity is used when an operation would break references between records
	ErrCodeReferentialIntegrity = "REFERENTIAL_INTEGRITY"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInvalidState is used when an operation is invalid for the current lifecycle state
	ErrCodeInvalidState = "INVALID_STATE"
)

// Codes produced by the HTTP layer itself
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMITED"
	// ErrCodeRequestTooLarge is used when the request body exceeds the size limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:           http.StatusBadRequest,
	ErrCodeConflict:             http.StatusConflict,
	ErrCodeReferentialIntegrity: http.StatusUnprocessableEntity,
	ErrCodeNotFound:             http.StatusNotFound,
	ErrCodeInvalidState:         http.StatusUnprocessableEntity,

	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
