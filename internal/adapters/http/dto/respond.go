package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
)

// MapDomainError maps an error to a status code and error envelope.
// Unknown errors become 500 with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	resp := envelopeFor(err)

	return HTTPStatusFromCode(resp.Error.Code), resp
}

func envelopeFor(err error) *ErrorResponse {
	switch {
	case errors.Is(err, ErrBinding):
		return NewErrorResponse(ErrorCodeBadRequest, "request body is not valid JSON")

	case errors.Is(err, ErrValidation):
		return NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", ValidationErrors(err))

	case domain.IsValidation(err):
		var details map[string]string

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			details = map[string]string{validationErr.Field: validationErr.Message}
		}

		return NewErrorResponseWithDetails(ErrorCodeValidation, err.Error(), details)

	case domain.IsInvalidCredentials(err):
		return NewErrorResponse(ErrorCodeUnauthorized, "invalid credentials")

	case domain.IsNotFound(err):
		return NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsConflict(err):
		return NewErrorResponse(ErrorCodeConflict, err.Error())

	case domain.IsUnavailable(err):
		return NewErrorResponse(ErrorCodeUnavailable, err.Error())

	default:
		return NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}
}

// HandleError writes err as an error envelope carrying the trace ID.
// Internal errors are logged with their full text, which the client never sees.
func HandleError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)
	errResp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.Any("error", err),
			slog.String("trace_id", errResp.TraceID))
	}

	c.JSON(status, errResp)
}

// GetTraceID returns the OpenTelemetry trace ID of the request, if any.
func GetTraceID(c *gin.Context) string {
	if c.Request == nil {
		return ""
	}

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}
