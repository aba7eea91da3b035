package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errProviderDown = domain.NewUnavailableError("quote-provider", "timeout")

func newQuoteService(t *testing.T) (*QuoteService, *mocks.MockQuoteProvider, *mocks.MockQuoteStore) {
	t.Helper()

	provider := mocks.NewMockQuoteProvider(t)
	store := mocks.NewMockQuoteStore(t)

	svc := NewQuoteService(QuoteServiceConfig{
		Provider: provider,
		Store:    store,
		Logger:   discardLogger(),
	})

	return svc, provider, store
}

func TestNewQuoteService_PanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Store: mocks.NewMockQuoteStore(t)})
	})
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Provider: mocks.NewMockQuoteProvider(t)})
	})
}

func TestNewQuoteService_DefaultsLogger(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{
		Provider: mocks.NewMockQuoteProvider(t),
		Store:    mocks.NewMockQuoteStore(t),
	})

	require.NotNil(t, svc.logger)
}

func TestQuoteService_Random(t *testing.T) {
	live := domain.Quote{Content: "Stay hungry.", Author: "Steve Jobs", Categories: []string{"life"}}
	cached := domain.Quote{Content: "Be yourself; everyone else is already taken.", Author: "Oscar Wilde"}

	tests := []struct {
		name  string
		setup func(*mocks.MockQuoteProvider, *mocks.MockQuoteStore)
		want  domain.Quote
	}{
		{
			name: "live quote is cached and returned",
			setup: func(p *mocks.MockQuoteProvider, s *mocks.MockQuoteStore) {
				p.EXPECT().RandomQuote(mock.Anything).Return(live, nil)
				s.EXPECT().Merge(mock.Anything, []domain.Quote{live}, "").Return()
			},
			want: live,
		},
		{
			name: "provider unavailable falls back to store",
			setup: func(p *mocks.MockQuoteProvider, s *mocks.MockQuoteStore) {
				p.EXPECT().RandomQuote(mock.Anything).Return(domain.Quote{}, errProviderDown)
				s.EXPECT().GetRandom(mock.Anything).Return(cached)
			},
			want: cached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, provider, store := newQuoteService(t)
			tt.setup(provider, store)

			assert.Equal(t, tt.want, svc.Random(context.Background()))
		})
	}
}

func TestQuoteService_ByCategory(t *testing.T) {
	live := []domain.Quote{{Content: "Know thyself.", Author: "Socrates", Categories: []string{"wisdom"}}}
	cached := []domain.Quote{{Content: "Cached.", Author: "Someone", Categories: []string{"wisdom"}}}

	tests := []struct {
		name   string
		label  string
		setup  func(*mocks.MockQuoteProvider, *mocks.MockQuoteStore)
		assert func(*testing.T, []domain.Quote)
	}{
		{
			name:  "live results are merged under the label",
			label: "Wisdom",
			setup: func(p *mocks.MockQuoteProvider, s *mocks.MockQuoteStore) {
				p.EXPECT().QuotesByCategory(mock.Anything, "wisdom").Return(live, nil)
				s.EXPECT().Merge(mock.Anything, live, "wisdom").Return()
			},
			assert: func(t *testing.T, got []domain.Quote) {
				assert.Equal(t, live, got)
			},
		},
		{
			name:  "empty live result uses the cached bucket",
			label: "wisdom",
			setup: func(p *mocks.MockQuoteProvider, s *mocks.MockQuoteStore) {
				p.EXPECT().QuotesByCategory(mock.Anything, "wisdom").Return([]domain.Quote{}, nil)
				s.EXPECT().GetByCategory(mock.Anything, "wisdom").Return(cached)
			},
			assert: func(t *testing.T, got []domain.Quote) {
				assert.Equal(t, cached, got)
			},
		},
		{
			name:  "provider down uses the cached bucket",
			label: "wisdom",
			setup: func(p *mocks.MockQuoteProvider, s *mocks.MockQuoteStore) {
				p.EXPECT().QuotesByCategory(mock.Anything, "wisdom").Return(nil, errProviderDown)
				s.EXPECT().GetByCategory(mock.Anything, "wisdom").Return(cached)
			},
			assert: func(t *testing.T, got []domain.Quote) {
				assert.Equal(t, cached, got)
			},
		},
		{
			name:  "empty bucket uses matching seed quotes",
			label: "humor",
			setup: func(p *mocks.MockQuoteProvider, s *mocks.MockQuoteStore) {
				p.EXPECT().QuotesByCategory(mock.Anything, "humor").Return(nil, errProviderDown)
				s.EXPECT().GetByCategory(mock.Anything, "humor").Return([]domain.Quote{})
			},
			assert: func(t *testing.T, got []domain.Quote) {
				require.Len(t, got, 1)
				assert.Equal(t, "Mark Twain", got[0].Author)
			},
		},
		{
			name:  "unknown label uses the first seed quotes",
			label: "nonexistent",
			setup: func(p *mocks.MockQuoteProvider, s *mocks.MockQuoteStore) {
				p.EXPECT().QuotesByCategory(mock.Anything, "nonexistent").Return(nil, errProviderDown)
				s.EXPECT().GetByCategory(mock.Anything, "nonexistent").Return([]domain.Quote{})
			},
			assert: func(t *testing.T, got []domain.Quote) {
				assert.Equal(t, domain.SeedQuotes()[:domain.SeedFallbackCount], got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, provider, store := newQuoteService(t)
			tt.setup(provider, store)

			tt.assert(t, svc.ByCategory(context.Background(), tt.label))
		})
	}
}

func TestQuoteService_Categories(t *testing.T) {
	t.Run("union of provider and store, sorted", func(t *testing.T) {
		svc, provider, store := newQuoteService(t)
		store.EXPECT().ListCategories(mock.Anything).Return([]string{"life", "wisdom"})
		provider.EXPECT().Categories(mock.Anything).Return([]string{"Famous Quotes", "wisdom", ""}, nil)

		assert.Equal(t, []string{"famous quotes", "life", "wisdom"}, svc.Categories(context.Background()))
	})

	t.Run("provider down returns store labels", func(t *testing.T) {
		svc, provider, store := newQuoteService(t)
		store.EXPECT().ListCategories(mock.Anything).Return([]string{"life", "wisdom"})
		provider.EXPECT().Categories(mock.Anything).Return(nil, errProviderDown)

		assert.Equal(t, []string{"life", "wisdom"}, svc.Categories(context.Background()))
	})
}

func TestQuoteService_AddQuote(t *testing.T) {
	ada := domain.Identity{UserID: 1, Username: "ada"}

	t.Run("stores with submitter and normalized categories", func(t *testing.T) {
		svc, _, store := newQuoteService(t)

		want := domain.Quote{Content: "Ship it.", Author: "Ada", Categories: []string{"work"}, AddedBy: "ada"}
		store.EXPECT().AddUserQuote(mock.Anything, want).Return(want)

		got, err := svc.AddQuote(context.Background(), ada, "Ship it.", "Ada", []string{" Work ", "work"})

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing fields are validation errors", func(t *testing.T) {
		svc, _, _ := newQuoteService(t)

		_, err := svc.AddQuote(context.Background(), ada, "", "Ada", nil)
		assert.True(t, domain.IsValidation(err))

		_, err = svc.AddQuote(context.Background(), ada, "Ship it.", "", nil)
		assert.True(t, domain.IsValidation(err))
	})
}
