package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrDuplicateChecker is returned when a checker name is registered twice.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by components that can report their health.
//
//	func (f *File) Name() string                    { return "quote-snapshot" }
//	func (f *File) Check(ctx context.Context) error { return f.probeWritable() }
type HealthChecker interface {
	// Name identifies the component in health responses.
	Name() string

	// Check returns nil when the component is healthy.
	Check(ctx context.Context) error
}

// OptionalChecker marks a checker whose failure only degrades the service.
// The quote provider is optional because every read has a local fallback.
type OptionalChecker interface {
	HealthChecker
	Optional() bool
}

// HealthRegistry aggregates health checks from registered components.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the state of a component or of the whole service.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the aggregated answer of CheckAll.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of one checker.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry runs registered checks concurrently.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
}

// NewHealthRegistry creates an empty registry.
func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{}
}

// Register adds checker. Names must be unique.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for _, c := range r.checkers {
		if c.Name() == name {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
		}
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs every checker and folds the results. A failing optional
// checker makes the result degraded; any other failure makes it unhealthy.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := append([]HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, checker := range checkers {
		wg.Add(1)

		go func(c HealthChecker) {
			defer wg.Done()

			start := time.Now()
			err := c.Check(ctx)

			cr := &CheckResult{Status: HealthStatusHealthy, Duration: time.Since(start)}
			if err != nil {
				cr.Status = HealthStatusUnhealthy
				cr.Message = err.Error()

				if oc, ok := c.(OptionalChecker); ok && oc.Optional() {
					cr.Status = HealthStatusDegraded
				}
			}

			mu.Lock()
			result.Checks[c.Name()] = cr
			result.Status = worse(result.Status, cr.Status)
			mu.Unlock()
		}(checker)
	}

	wg.Wait()

	return result
}

func worse(a, b HealthStatus) HealthStatus {
	rank := map[HealthStatus]int{HealthStatusHealthy: 0, HealthStatusDegraded: 1, HealthStatusUnhealthy: 2}
	if rank[b] > rank[a] {
		return b
	}

	return a
}
