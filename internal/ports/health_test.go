package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name     string
	err      error
	optional bool
}

func (s *stubChecker) Name() string { return s.name }
func (s *stubChecker) Check(context.Context) error { return s.err }
func (s *stubChecker) Optional() bool { return s.optional }

func TestRegister_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "quote-snapshot"}))

	err := registry.Register(&stubChecker{name: "quote-snapshot"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "quote-snapshot")
	assert.Len(t, registry.checkers, 1)
}

func TestCheckAll(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name     string
		checkers []HealthChecker
		want     HealthStatus
	}{
		{
			name: "no checkers is healthy",
			want: HealthStatusHealthy,
		},
		{
			name: "all healthy",
			checkers: []HealthChecker{
				&stubChecker{name: "quote-snapshot"},
				&stubChecker{name: "user-snapshot"},
			},
			want: HealthStatusHealthy,
		},
		{
			name: "optional failure degrades",
			checkers: []HealthChecker{
				&stubChecker{name: "quote-snapshot"},
				&stubChecker{name: "quote-provider", err: boom, optional: true},
			},
			want: HealthStatusDegraded,
		},
		{
			name: "critical failure is unhealthy",
			checkers: []HealthChecker{
				&stubChecker{name: "quote-snapshot", err: boom},
				&stubChecker{name: "quote-provider", err: boom, optional: true},
			},
			want: HealthStatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.want, result.Status)
			assert.Len(t, result.Checks, len(tt.checkers))
			assert.False(t, result.Timestamp.IsZero())
		})
	}
}

func TestCheckAll_ReportsFailureMessage(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "quote-provider", err: errors.New("timeout"), optional: true}))

	result := registry.CheckAll(context.Background())

	require.Contains(t, result.Checks, "quote-provider")
	assert.Equal(t, HealthStatusDegraded, result.Checks["quote-provider"].Status)
	assert.Equal(t, "timeout", result.Checks["quote-provider"].Message)
}
