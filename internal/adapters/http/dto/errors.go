// Package dto holds the JSON request and response shapes of the HTTP API and
// the error envelope every failure is written in.
package dto

import "net/http"

// ErrorResponse is the envelope for every error answer:
//
//	{"error": {"code": "CONFLICT", "message": "...", "details": {...}}, "traceId": "..."}
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail is the body of the envelope. Details carries per-field
// messages for validation failures.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Machine-readable error codes.
const (
	ErrorCodeBadRequest   = "BAD_REQUEST"      // body is not valid JSON
	ErrorCodeValidation   = "VALIDATION_ERROR" // a field is missing or malformed
	ErrorCodeUnauthorized = "UNAUTHORIZED"     // no bearer token, or wrong login
	ErrorCodeForbidden    = "FORBIDDEN"        // bearer token failed verification
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeConflict     = "CONFLICT" // duplicate account or favorite
	ErrorCodeTimeout      = "TIMEOUT"
	ErrorCodeUnavailable  = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal     = "INTERNAL_ERROR"
)

var statusByCode = map[string]int{
	ErrorCodeBadRequest:   http.StatusBadRequest,
	ErrorCodeValidation:   http.StatusBadRequest,
	ErrorCodeUnauthorized: http.StatusUnauthorized,
	ErrorCodeForbidden:    http.StatusForbidden,
	ErrorCodeNotFound:     http.StatusNotFound,
	ErrorCodeConflict:     http.StatusConflict,
	ErrorCodeTimeout:      http.StatusGatewayTimeout,
	ErrorCodeUnavailable:  http.StatusServiceUnavailable,
	ErrorCodeInternal:     http.StatusInternalServerError,
}

// HTTPStatusFromCode returns the status an error code is written with.
// Unknown codes are 500.
func HTTPStatusFromCode(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// NewErrorResponse returns an envelope without details.
func NewErrorResponse(code, message string) *ErrorResponse {
	return NewErrorResponseWithDetails(code, message, nil)
}

// NewErrorResponseWithDetails returns an envelope with per-field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}

// WithTraceID sets the trace ID and returns e.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}
