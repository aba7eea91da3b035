package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Tier names which fallback level answered a quote read.
type Tier string

const (
	TierLive  Tier = "live"
	TierCache Tier = "cache"
	TierSeed  Tier = "seed"
)

// QuoteMetrics counts quote reads per answering tier.
type QuoteMetrics struct {
	served metric.Int64Counter
}

// NewQuoteMetrics registers quotes.served.total on the global meter.
// A registration failure yields a recorder that drops observations.
func NewQuoteMetrics() *QuoteMetrics {
	served, err := otel.Meter(instrumentationName).Int64Counter("quotes.served.total",
		metric.WithDescription("Quote reads by operation and answering tier"),
	)
	if err != nil {
		otel.Handle(err)
		return &QuoteMetrics{}
	}

	return &QuoteMetrics{served: served}
}

// Served records one answered read.
func (m *QuoteMetrics) Served(ctx context.Context, operation string, tier Tier) {
	if m == nil || m.served == nil {
		return
	}

	m.served.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("tier", string(tier)),
	))
}
