package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/quotevault/internal/adapters/clients"
	"github.com/jsamuelsen/quotevault/internal/domain"
)

// ErrorResponse is the provider's error body. The quotable API answers with
// statusCode/statusMessage; a nested error.message is accepted as well.
type ErrorResponse struct {
	StatusCode    int    `json:"statusCode,omitempty"`
	StatusMessage string `json:"statusMessage,omitempty"`
	Error         struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GetMessage returns whichever message field is populated.
func (e *ErrorResponse) GetMessage() string {
	if e.StatusMessage != "" {
		return e.StatusMessage
	}

	return e.Error.Message
}

// ParseErrorResponse decodes an error body. It returns nil when the body is
// empty, not JSON, or carries no message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, 64<<10)).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError converts a failed provider call into a domain.UnavailableError.
// clientErr is the error from the HTTP client, if any; otherwise resp carries
// the non-2xx answer. A 2xx response with no client error maps to nil.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, operation+": no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	reason := fmt.Sprintf("%s: HTTP %d", operation, resp.StatusCode)
	if errResp := ParseErrorResponse(resp.Body); errResp != nil {
		reason += ": " + errResp.GetMessage()
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		reason = operation + ": rate limit exceeded"
	}

	return domain.NewUnavailableError(serviceName, reason)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName, "circuit breaker open during "+operation)
	default:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("%s failed: %v", operation, err))
	}
}
