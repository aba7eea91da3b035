package store

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newQuoteStore(repo *memRepo[QuoteSnapshot]) *QuoteStore {
	cfg := QuoteStoreConfig{Now: func() time.Time { return fixedNow }}
	if repo != nil {
		cfg.Repo = repo
	}

	return NewQuoteStore(cfg)
}

// assertBucketInvariant checks that every bucket member carries its label and
// every carried label has a bucket containing the quote.
func assertBucketInvariant(t *testing.T, s *QuoteStore) {
	t.Helper()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for c, bucket := range s.byCategory {
		for _, i := range bucket {
			require.Less(t, i, len(s.all))
			assert.True(t, s.all[i].HasCategory(c), "quote %d in bucket %q lacks the label", i, c)
		}
	}

	for i, q := range s.all {
		for _, c := range q.Categories {
			assert.True(t, slices.Contains(s.byCategory[c], i), "label %q of quote %d has no bucket entry", c, i)
		}
	}
}

func TestNewQuoteStore_StartsFromSeed(t *testing.T) {
	s := newQuoteStore(nil)

	assert.Equal(t, 15, s.QuoteCount())
	assert.Equal(t,
		[]string{"creativity", "happiness", "humor", "inspiration", "life", "love", "motivation", "success", "wisdom"},
		s.ListCategories(context.Background()))
	assert.Equal(t, 9, s.CategoryCount())
	assertBucketInvariant(t, s)
}

func TestQuoteStore_GetRandom_FromSeedOnly(t *testing.T) {
	s := NewQuoteStore(QuoteStoreConfig{Intn: func(n int) int { return n - 1 }})

	q := s.GetRandom(context.Background())

	assert.Equal(t, "Dalai Lama", q.Author)
	assert.NotEmpty(t, q.Content)
}

func TestQuoteStore_GetRandom_ReturnsCopy(t *testing.T) {
	s := NewQuoteStore(QuoteStoreConfig{Intn: func(int) int { return 0 }})

	q := s.GetRandom(context.Background())
	q.Categories[0] = "mutated"

	assert.Equal(t, "wisdom", s.GetRandom(context.Background()).Categories[0])
}

func TestQuoteStore_GetByCategory(t *testing.T) {
	s := newQuoteStore(nil)
	ctx := context.Background()

	wisdom := s.GetByCategory(ctx, "WISDOM")
	assert.Len(t, wisdom, 7)

	for _, q := range wisdom {
		assert.True(t, q.HasCategory("wisdom"))
	}

	unknown := s.GetByCategory(ctx, "nonexistent")
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestQuoteStore_Merge_AddsNewAndIndexesUnderLabel(t *testing.T) {
	s := newQuoteStore(nil)
	ctx := context.Background()

	s.Merge(ctx, []domain.Quote{quote("Know thyself.", "Socrates", "Philosophy")}, "Wisdom")

	assert.Equal(t, 16, s.QuoteCount())

	got := s.GetByCategory(ctx, "philosophy")
	require.Len(t, got, 1)
	assert.Equal(t, []string{"philosophy", "wisdom"}, got[0].Categories)
	assert.Contains(t, s.GetByCategory(ctx, "wisdom"), got[0])
	assertBucketInvariant(t, s)
}

func TestQuoteStore_Merge_IsIdempotent(t *testing.T) {
	s := newQuoteStore(nil)
	ctx := context.Background()
	batch := []domain.Quote{
		quote("Know thyself.", "Socrates", "philosophy"),
		quote("Less is more.", "Robert Browning"),
	}

	s.Merge(ctx, batch, "wisdom")
	first := s.Snapshot(ctx)

	s.Merge(ctx, batch, "wisdom")
	s.Merge(ctx, batch, "")

	assert.Equal(t, first, s.Snapshot(ctx))
	assertBucketInvariant(t, s)
}

func TestQuoteStore_Merge_EnrichesExistingQuote(t *testing.T) {
	s := newQuoteStore(nil)
	ctx := context.Background()

	// Oscar Wilde is seeded under wisdom and inspiration.
	s.Merge(ctx, []domain.Quote{quote("Be yourself; everyone else is already taken.", "Oscar Wilde")}, "famous-quotes")

	assert.Equal(t, 15, s.QuoteCount(), "no duplicate record")

	got := s.GetByCategory(ctx, "famous-quotes")
	require.Len(t, got, 1)
	assert.Equal(t, []string{"wisdom", "inspiration", "famous-quotes"}, got[0].Categories)
	assertBucketInvariant(t, s)
}

func TestQuoteStore_Merge_IdentityIsCaseSensitive(t *testing.T) {
	s := newQuoteStore(nil)

	s.Merge(context.Background(), []domain.Quote{quote("be yourself; everyone else is already taken.", "Oscar Wilde")}, "")

	assert.Equal(t, 16, s.QuoteCount())
}

func TestQuoteStore_Merge_SkipsInvalid(t *testing.T) {
	s := newQuoteStore(nil)

	s.Merge(context.Background(), []domain.Quote{quote("", "Nobody"), quote("Nothing", "")}, "void")

	assert.Equal(t, 15, s.QuoteCount())
	assert.NotContains(t, s.ListCategories(context.Background()), "void")
}

func TestQuoteStore_AddUserQuote_AlwaysAppendsAndPersists(t *testing.T) {
	repo := &memRepo[QuoteSnapshot]{}
	s := newQuoteStore(repo)
	ctx := context.Background()

	dup := domain.Quote{
		Content:    "Be yourself; everyone else is already taken.",
		Author:     "Oscar Wilde",
		Categories: []string{"Originals"},
		AddedBy:    "ada",
	}

	added := s.AddUserQuote(ctx, dup)

	assert.Equal(t, []string{"originals"}, added.Categories)
	assert.Equal(t, "ada", added.AddedBy)
	assert.Equal(t, 16, s.QuoteCount(), "user quotes skip dedupe")
	assert.Equal(t, 1, repo.saveCount())
	assert.Len(t, repo.snap.All, 16)
	assert.Equal(t, fixedNow, repo.snap.SavedAt)
	assertBucketInvariant(t, s)
}

func TestQuoteStore_AddUserQuote_PersistFailureIsSwallowed(t *testing.T) {
	repo := &memRepo[QuoteSnapshot]{saveErr: errors.New("disk full")}
	s := newQuoteStore(repo)

	added := s.AddUserQuote(context.Background(), quote("Ship it.", "ada", "work"))

	assert.Equal(t, "Ship it.", added.Content)
	assert.Len(t, s.GetByCategory(context.Background(), "work"), 1)
}

func TestQuoteStore_AddUserQuote_CanceledRequestStillPersists(t *testing.T) {
	repo := &memRepo[QuoteSnapshot]{}
	s := newQuoteStore(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.AddUserQuote(ctx, quote("Ship it.", "ada"))

	assert.Equal(t, 1, repo.saveCount())
}

func TestQuoteStore_SnapshotRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newQuoteStore(nil)
	src.Merge(ctx, []domain.Quote{quote("Know thyself.", "Socrates", "philosophy")}, "wisdom")
	src.AddUserQuote(ctx, domain.Quote{Content: "Ship it.", Author: "ada", AddedBy: "ada"})

	snap := src.Snapshot(ctx)

	dst := NewQuoteStore(QuoteStoreConfig{Now: func() time.Time { return fixedNow }})
	dst.Restore(ctx, snap)

	assert.Equal(t, snap, dst.Snapshot(ctx))
	assert.Equal(t, src.ListCategories(ctx), dst.ListCategories(ctx))
	assertBucketInvariant(t, dst)
}

func TestQuoteStore_SnapshotRestoreRoundTrip_KeepsBucketOrder(t *testing.T) {
	ctx := context.Background()
	src := newQuoteStore(nil)
	// A seed quote gaining "life" lands at the end of that bucket.
	src.Merge(ctx, []domain.Quote{quote("Be yourself; everyone else is already taken.", "Oscar Wilde")}, "life")

	snap := src.Snapshot(ctx)

	dst := newQuoteStore(nil)
	dst.Restore(ctx, snap)

	assert.Equal(t, snap, dst.Snapshot(ctx))

	life := dst.GetByCategory(ctx, "life")
	require.NotEmpty(t, life)
	assert.Equal(t, src.GetByCategory(ctx, "life"), life)
	assert.Equal(t, "John Lennon", life[0].Author)
	assert.Equal(t, "Oscar Wilde", life[len(life)-1].Author)
	assertBucketInvariant(t, dst)
}

func TestQuoteStore_Restore_LegacyByCategory(t *testing.T) {
	s := newQuoteStore(nil)
	ctx := context.Background()

	s.Restore(ctx, QuoteSnapshot{
		All: []QuoteRecord{
			{Content: "Know thyself.", Author: "Socrates", Categories: []string{"Wisdom"}},
		},
		ByCategory: map[string][]QuoteRecord{
			// Tagged under a label it does not carry.
			"Philosophy": {{Content: "Know thyself.", Author: "Socrates"}},
			// Missing from all entirely.
			"life": {{Content: "Carpe diem.", Author: "Horace"}},
			// Invalid entries are dropped.
			"void": {{Content: "", Author: "x"}},
		},
	})

	assert.Equal(t, 2, s.QuoteCount())
	assert.Equal(t, []string{"life", "philosophy", "wisdom"}, s.ListCategories(ctx))

	philosophy := s.GetByCategory(ctx, "philosophy")
	require.Len(t, philosophy, 1)
	assert.Equal(t, []string{"wisdom", "philosophy"}, philosophy[0].Categories)

	life := s.GetByCategory(ctx, "life")
	require.Len(t, life, 1)
	assert.Equal(t, "Horace", life[0].Author)
	assertBucketInvariant(t, s)
}

func TestQuoteStore_LoadOrSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("missing snapshot keeps seed", func(t *testing.T) {
		s := newQuoteStore(&memRepo[QuoteSnapshot]{})

		require.NoError(t, s.LoadOrSeed(ctx))
		assert.Equal(t, 15, s.QuoteCount())
	})

	t.Run("snapshot restored and seed re-merged", func(t *testing.T) {
		repo := &memRepo[QuoteSnapshot]{}
		require.NoError(t, repo.Save(ctx, QuoteSnapshot{
			All: []QuoteRecord{{Content: "Know thyself.", Author: "Socrates", Categories: []string{"wisdom"}}},
		}))

		s := newQuoteStore(repo)
		require.NoError(t, s.LoadOrSeed(ctx))

		assert.Equal(t, 16, s.QuoteCount())
		assert.Equal(t, "Socrates", s.GetByCategory(ctx, "wisdom")[0].Author)
		assertBucketInvariant(t, s)
	})

	t.Run("load failure is returned", func(t *testing.T) {
		s := newQuoteStore(&memRepo[QuoteSnapshot]{loadErr: errors.New("corrupt")})

		require.ErrorContains(t, s.LoadOrSeed(ctx), "corrupt")
		assert.Equal(t, 15, s.QuoteCount())
	})

	t.Run("no repository", func(t *testing.T) {
		require.NoError(t, newQuoteStore(nil).LoadOrSeed(ctx))
	})
}

func TestQuoteStore_FlushAndName(t *testing.T) {
	repo := &memRepo[QuoteSnapshot]{}
	s := newQuoteStore(repo)

	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, SnapshotVersion, repo.snap.Version)
	assert.Len(t, repo.snap.ByCategory["wisdom"], 7)
	assert.Equal(t, "quotes", s.Name())

	repo.saveErr = errors.New("read-only")
	require.ErrorContains(t, s.Flush(context.Background()), "saving quote snapshot")
}

func TestQuoteStore_ConcurrentMutations(t *testing.T) {
	s := newQuoteStore(&memRepo[QuoteSnapshot]{})
	ctx := context.Background()

	var wg sync.WaitGroup

	for range 20 {
		wg.Add(2)

		go func() {
			defer wg.Done()
			s.Merge(ctx, []domain.Quote{quote("shared", "author", "shared")}, "concurrent")
		}()

		go func() {
			defer wg.Done()
			s.AddUserQuote(ctx, quote("user", "author", "mine"))
			_ = s.GetByCategory(ctx, "concurrent")
		}()
	}

	wg.Wait()

	assert.Equal(t, 15+1+20, s.QuoteCount())
	assert.Len(t, s.GetByCategory(ctx, "concurrent"), 1)
	assertBucketInvariant(t, s)
}
