package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"finance-calculator/calculator"
)

// APIError represents a structured API error response
type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// ValidationError describes one field that failed request validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

func newAPIError(status int, code, message string, details any) *APIError {
	return &APIError{
		StatusCode: status,
		ErrorCode:  code,
		Message:    message,
		Details:    details,
	}
}

var (
	errMethodNotAllowed  = newAPIError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	errNotFound          = newAPIError(http.StatusNotFound, "NOT_FOUND", "resource not found", nil)
	errUnsupportedMedia  = newAPIError(http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json", nil)
	errRateLimitExceeded = newAPIError(http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "rate limit exceeded", nil)
	errInternalServer    = newAPIError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error", nil)
)

func invalidRequest(err error) *APIError {
	return newAPIError(http.StatusBadRequest, "INVALID_REQUEST", "invalid request body", err.Error())
}

func invalidParameter(name, message string) *APIError {
	return newAPIError(http.StatusBadRequest, "INVALID_PARAMETER", message, ValidationError{Field: name, Message: message})
}

func validationFailed(details []ValidationError) *APIError {
	return newAPIError(http.StatusBadRequest, "VALIDATION_FAILED", "request validation failed", details)
}

// toAPIError maps service errors onto API errors. Engine argument errors keep
// their message verbatim.
func toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var argErr *calculator.ArgumentError
	if errors.As(err, &argErr) {
		return newAPIError(http.StatusBadRequest, "INVALID_ARGUMENT", argErr.Error(), map[string]string{
			"argument": argErr.Arg,
		})
	}
	if errors.Is(err, calculator.ErrInvalidArgument) {
		return newAPIError(http.StatusBadRequest, "INVALID_ARGUMENT", err.Error(), nil)
	}

	return errInternalServer
}

func writeError(w http.ResponseWriter, r *http.Request, err *APIError) {
	render.Status(r, err.StatusCode)
	render.JSON(w, r, ErrorResponse{Success: false, Error: err})
}
