package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "unknown user",
			err:         domain.NewNotFoundError("user", "9"),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: `user "9" not found`,
		},
		{
			name:        "duplicate favorite",
			err:         domain.NewConflictError("favorite", "quote already in favorites"),
			wantStatus:  http.StatusConflict,
			wantCode:    ErrorCodeConflict,
			wantMessage: "quote already in favorites",
		},
		{
			name:        "bad login",
			err:         fmt.Errorf("login: %w", domain.ErrInvalidCredentials),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    ErrorCodeUnauthorized,
			wantMessage: "invalid credentials",
		},
		{
			name:        "missing field",
			err:         domain.NewValidationError("email", "is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "email",
		},
		{
			name:        "malformed body",
			err:         fmt.Errorf("%w: unexpected EOF", ErrBinding),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeBadRequest,
			wantMessage: "not valid JSON",
		},
		{
			name:        "provider down",
			err:         domain.NewUnavailableError("quotable", "timeout"),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    ErrorCodeUnavailable,
			wantMessage: "quotable",
		},
		{
			name:        "anything else",
			err:         errors.New("disk on fire"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeInternal,
			wantMessage: "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tt.wantMessage)
		})
	}
}

func TestMapDomainError_Nil(t *testing.T) {
	status, resp := MapDomainError(nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

func TestMapDomainError_FieldDetails(t *testing.T) {
	_, resp := MapDomainError(domain.NewValidationError("password", "is required"))
	assert.Equal(t, map[string]string{"password": "is required"}, resp.Error.Details)

	err := Validate(&LoginRequest{Email: "ada@example.com"})
	_, resp = MapDomainError(err)
	assert.Equal(t, map[string]string{"password": "this field is required"}, resp.Error.Details)
}

func TestHandleError(t *testing.T) {
	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request = c.Request.WithContext(trace.ContextWithSpanContext(c.Request.Context(), sc))

	HandleError(c, domain.NewConflictError("user", "email or username taken"))

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCodeConflict, resp.Error.Code)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", resp.TraceID)
}

func TestGetTraceID_NoSpan(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetTraceID(c))

	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetTraceID(c))
}
