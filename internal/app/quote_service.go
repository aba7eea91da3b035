// Package app contains the application services behind the HTTP handlers.
// Services depend on ports only; adapters are injected at startup.
package app

import (
	"context"
	"log/slog"
	"slices"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/telemetry"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

// Operation names used in logs and the served-quotes metric.
const (
	OpRandom     = "random"
	OpByCategory = "by_category"
	OpCategories = "categories"
)

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Provider ports.QuoteProvider
	Store    ports.QuoteStore

	// Metrics is optional.
	Metrics *telemetry.QuoteMetrics
	Logger  *slog.Logger
}

// QuoteService answers quote reads from the live provider when it can, then
// from the cached store, then from the seed quotes. Reads never fail.
type QuoteService struct {
	provider ports.QuoteProvider
	store    ports.QuoteStore
	metrics  *telemetry.QuoteMetrics
	logger   *slog.Logger
}

// NewQuoteService creates a quote service.
// Panics if Provider or Store is nil. Defaults logger to slog.Default() if nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Provider == nil {
		panic("QuoteService: Provider is required")
	}

	if cfg.Store == nil {
		panic("QuoteService: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		provider: cfg.Provider,
		store:    cfg.Store,
		metrics:  cfg.Metrics,
		logger:   logger,
	}
}

// Random returns a live quote, caching it, or a random cached quote when the
// provider is unavailable.
func (s *QuoteService) Random(ctx context.Context) domain.Quote {
	q, err := s.provider.RandomQuote(ctx)
	if err == nil {
		s.store.Merge(ctx, []domain.Quote{q}, "")
		s.served(ctx, OpRandom, telemetry.TierLive)

		return q
	}

	s.fellBack(ctx, OpRandom, err)
	s.served(ctx, OpRandom, telemetry.TierCache)

	return s.store.GetRandom(ctx)
}

// ByCategory returns quotes for label. A non-empty live answer is cached under
// label; otherwise the cached bucket is used, then the matching seed quotes,
// then the first few seed quotes. The result is never empty.
func (s *QuoteService) ByCategory(ctx context.Context, label string) []domain.Quote {
	label = domain.NormalizeCategory(label)

	quotes, err := s.provider.QuotesByCategory(ctx, label)

	switch {
	case err != nil:
		s.fellBack(ctx, OpByCategory, err, slog.String("category", label))
	case len(quotes) > 0:
		s.store.Merge(ctx, quotes, label)
		s.served(ctx, OpByCategory, telemetry.TierLive)

		return quotes
	default:
		s.logger.DebugContext(ctx, "provider has no quotes for category", slog.String("category", label))
	}

	if cached := s.store.GetByCategory(ctx, label); len(cached) > 0 {
		s.served(ctx, OpByCategory, telemetry.TierCache)
		return cached
	}

	s.served(ctx, OpByCategory, telemetry.TierSeed)

	return domain.SeedQuotesFor(label)
}

// Categories returns the sorted union of the provider's tags and the cached
// labels, or the cached labels alone when the provider is unavailable.
func (s *QuoteService) Categories(ctx context.Context) []string {
	labels := s.store.ListCategories(ctx)

	remote, err := s.provider.Categories(ctx)
	if err != nil {
		s.fellBack(ctx, OpCategories, err)
		s.served(ctx, OpCategories, telemetry.TierCache)

		return labels
	}

	for _, c := range remote {
		if c = domain.NormalizeCategory(c); c != "" && !slices.Contains(labels, c) {
			labels = append(labels, c)
		}
	}

	slices.Sort(labels)
	s.served(ctx, OpCategories, telemetry.TierLive)

	return labels
}

// AddQuote stores a quote submitted by the authenticated user. Content and
// author are required; the quote is stored even if it duplicates another.
func (s *QuoteService) AddQuote(ctx context.Context, by domain.Identity, content, author string, categories []string) (domain.Quote, error) {
	q := domain.Quote{
		Content:    content,
		Author:     author,
		Categories: domain.NormalizeCategories(categories),
		AddedBy:    by.Username,
	}

	if err := q.Validate(); err != nil {
		return domain.Quote{}, err
	}

	added := s.store.AddUserQuote(ctx, q)

	s.logger.InfoContext(ctx, "user quote added",
		slog.String("author", added.Author),
		slog.Any("categories", added.Categories))

	return added, nil
}

func (s *QuoteService) served(ctx context.Context, op string, tier telemetry.Tier) {
	s.metrics.Served(ctx, op, tier)
}

func (s *QuoteService) fellBack(ctx context.Context, op string, err error, attrs ...any) {
	s.logger.WarnContext(ctx, "quote provider unavailable, using fallback",
		append([]any{slog.String("operation", op), slog.Any("error", err)}, attrs...)...)
}
