package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

// QuoteStoreConfig configures a QuoteStore.
type QuoteStoreConfig struct {
	// Repo persists snapshots. Nil keeps the store memory-only.
	Repo ports.SnapshotRepository[QuoteSnapshot]

	Logger *slog.Logger

	// Intn picks a random index in [0, n). Defaults to math/rand/v2.
	Intn func(n int) int

	// Now stamps snapshots. Defaults to time.Now.
	Now func() time.Time
}

// QuoteStore keeps every known quote in arrival order plus a category index.
// The index maps each label to positions in all and is maintained so that
// every position in bucket(c) holds a quote carrying c, and every label on a
// stored quote has a bucket.
type QuoteStore struct {
	mu         sync.RWMutex
	all        []domain.Quote
	byCategory map[string][]int
	// first holds the earliest position of each (content, author) pair.
	first map[domain.QuoteKey]int

	persistMu sync.Mutex
	repo      ports.SnapshotRepository[QuoteSnapshot]
	logger    *slog.Logger
	intn      func(int) int
	now       func() time.Time
}

var _ ports.QuoteStore = (*QuoteStore)(nil)

// NewQuoteStore returns a store holding the seed quotes.
func NewQuoteStore(cfg QuoteStoreConfig) *QuoteStore {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &QuoteStore{
		repo:   cfg.Repo,
		logger: logger.With(slog.String("store", "quotes")),
		intn:   cfg.Intn,
		now:    cfg.Now,
	}

	if s.intn == nil {
		s.intn = rand.IntN
	}

	if s.now == nil {
		s.now = time.Now
	}

	s.reset(domain.SeedQuotes())

	return s
}

// LoadOrSeed restores the saved snapshot on top of the seed quotes. A missing
// snapshot leaves the seed in place; the seed is merged back in either way so
// fallbacks always find it.
func (s *QuoteStore) LoadOrSeed(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	snap, err := s.repo.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.InfoContext(ctx, "no quote snapshot found, using seed quotes")
		return nil
	}

	if err != nil {
		return fmt.Errorf("loading quote snapshot: %w", err)
	}

	s.Restore(ctx, snap)
	s.Merge(ctx, domain.SeedQuotes(), "")

	s.logger.InfoContext(ctx, "quote snapshot loaded",
		slog.Int("quotes", s.QuoteCount()),
		slog.Int("categories", s.CategoryCount()))

	return nil
}

// GetRandom returns a uniformly chosen quote.
func (s *QuoteStore) GetRandom(_ context.Context) domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.all) == 0 {
		seed := domain.SeedQuotes()
		return seed[s.intn(len(seed))]
	}

	return s.all[s.intn(len(s.all))].Clone()
}

// GetByCategory returns the quotes indexed under label, in arrival order.
// Unknown labels yield an empty slice.
func (s *QuoteStore) GetByCategory(_ context.Context, label string) []domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket := s.byCategory[domain.NormalizeCategory(label)]
	out := make([]domain.Quote, 0, len(bucket))

	for _, i := range bucket {
		out = append(out, s.all[i].Clone())
	}

	return out
}

// Merge adds quotes whose (content, author) is new and files every quote under
// its own categories plus label. A quote already stored gains any category it
// is missing. Merging the same input twice changes nothing.
func (s *QuoteStore) Merge(_ context.Context, quotes []domain.Quote, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range quotes {
		if q.Validate() != nil {
			continue
		}

		cats := domain.NormalizeCategories(q.Categories, label)

		i, ok := s.first[q.Key()]
		if !ok {
			q.Categories = cats
			s.append(q)

			continue
		}

		for _, c := range cats {
			if !s.bucketHas(c, q.Key()) {
				s.tag(i, c)
			}
		}
	}
}

// AddUserQuote appends q unconditionally, indexes it and persists the store.
func (s *QuoteStore) AddUserQuote(ctx context.Context, q domain.Quote) domain.Quote {
	s.mu.Lock()
	q = q.Clone()
	q.Categories = domain.NormalizeCategories(q.Categories)
	s.append(q)
	s.mu.Unlock()

	s.persist(ctx)

	return q.Clone()
}

// ListCategories returns every indexed label, sorted.
func (s *QuoteStore) ListCategories(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	labels := make([]string, 0, len(s.byCategory))
	for c := range s.byCategory {
		labels = append(labels, c)
	}

	slices.Sort(labels)

	return labels
}

// Snapshot exports the full state.
func (s *QuoteStore) Snapshot(_ context.Context) QuoteSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCategory := make(map[string][]QuoteRecord, len(s.byCategory))
	for c, bucket := range s.byCategory {
		records := make([]QuoteRecord, len(bucket))
		for j, i := range bucket {
			records[j] = toRecord(s.all[i])
		}

		byCategory[c] = records
	}

	return QuoteSnapshot{
		Version:    SnapshotVersion,
		SavedAt:    s.now().UTC(),
		All:        toRecords(s.all),
		ByCategory: byCategory,
	}
}

// Restore replaces the state with snap. Each ByCategory entry keeps its saved
// order: a record maps to the next stored twin carrying the label, else tags
// its first stored twin, else is appended. Labels the snapshot omits keep the
// order rebuilt from All.
func (s *QuoteStore) Restore(ctx context.Context, snap QuoteSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skipped := 0
	quotes := make([]domain.Quote, 0, len(snap.All))

	for _, r := range snap.All {
		q := fromRecord(r)
		if q.Validate() != nil {
			skipped++
			continue
		}

		quotes = append(quotes, q)
	}

	s.reset(quotes)

	labels := make([]string, 0, len(snap.ByCategory))
	for c := range snap.ByCategory {
		labels = append(labels, c)
	}

	slices.Sort(labels)

	for _, raw := range labels {
		c := domain.NormalizeCategory(raw)
		if c == "" {
			continue
		}

		skipped += s.restoreBucket(c, snap.ByCategory[raw])
	}

	if skipped > 0 {
		s.logger.WarnContext(ctx, "skipped invalid quote records", slog.Int("count", skipped))
	}
}

// restoreBucket rebuilds bucket c in the order of records and returns the
// number of invalid records. Positions already filed under c that records do
// not name are kept after them. Must be called with mu held.
func (s *QuoteStore) restoreBucket(c string, records []QuoteRecord) int {
	pending := make(map[domain.QuoteKey][]int)
	for _, i := range s.byCategory[c] {
		key := s.all[i].Key()
		pending[key] = append(pending[key], i)
	}

	ordered := make([]int, 0, len(s.byCategory[c])+len(records))
	placed := make(map[int]bool, cap(ordered))
	skipped := 0

	for _, r := range records {
		q := fromRecord(r)
		if q.Validate() != nil {
			skipped++
			continue
		}

		key := q.Key()

		if next := pending[key]; len(next) > 0 {
			pending[key] = next[1:]
			ordered = append(ordered, next[0])
			placed[next[0]] = true

			continue
		}

		i, ok := s.first[key]
		if !ok {
			q.Categories = domain.NormalizeCategories(q.Categories, c)
			i = s.appendOutside(q, c)
		}

		if placed[i] {
			continue
		}

		if !s.all[i].HasCategory(c) {
			s.all[i].Categories = append(slices.Clone(s.all[i].Categories), c)
		}

		ordered = append(ordered, i)
		placed[i] = true
	}

	for _, i := range s.byCategory[c] {
		if !placed[i] {
			ordered = append(ordered, i)
		}
	}

	s.byCategory[c] = ordered

	return skipped
}

// appendOutside appends q and files it under every label except c, which the
// caller places itself. Must be called with mu held.
func (s *QuoteStore) appendOutside(q domain.Quote, c string) int {
	i := len(s.all)
	s.all = append(s.all, q)
	s.first[q.Key()] = i

	for _, label := range q.Categories {
		if label != c {
			s.byCategory[label] = append(s.byCategory[label], i)
		}
	}

	return i
}

// Flush writes the current state to the snapshot repository.
func (s *QuoteStore) Flush(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if err := s.repo.Save(ctx, s.Snapshot(ctx)); err != nil {
		return fmt.Errorf("saving quote snapshot: %w", err)
	}

	return nil
}

// Name identifies the store to the flusher.
func (s *QuoteStore) Name() string {
	return "quotes"
}

// QuoteCount returns the number of stored quotes.
func (s *QuoteStore) QuoteCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.all)
}

// CategoryCount returns the number of indexed labels.
func (s *QuoteStore) CategoryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byCategory)
}

// persist flushes after a mutation. Failures are logged; memory stays authoritative.
func (s *QuoteStore) persist(ctx context.Context) {
	if err := s.Flush(context.WithoutCancel(ctx)); err != nil {
		s.logger.WarnContext(ctx, "quote snapshot write failed", slog.Any("error", err))
	}
}

// reset must be called with mu held (or before the store is shared).
func (s *QuoteStore) reset(quotes []domain.Quote) {
	s.all = make([]domain.Quote, 0, len(quotes))
	s.byCategory = make(map[string][]int)
	s.first = make(map[domain.QuoteKey]int, len(quotes))

	for _, q := range quotes {
		s.append(q)
	}
}

// append must be called with mu held.
func (s *QuoteStore) append(q domain.Quote) {
	i := len(s.all)
	s.all = append(s.all, q)

	if _, ok := s.first[q.Key()]; !ok {
		s.first[q.Key()] = i
	}

	for _, c := range q.Categories {
		s.byCategory[c] = append(s.byCategory[c], i)
	}
}

// tag adds label c to the quote at position i and files it under c.
// Must be called with mu held.
func (s *QuoteStore) tag(i int, c string) {
	if !s.all[i].HasCategory(c) {
		s.all[i].Categories = append(slices.Clone(s.all[i].Categories), c)
	}

	if !slices.Contains(s.byCategory[c], i) {
		s.byCategory[c] = append(s.byCategory[c], i)
	}
}

// bucketHas reports whether bucket c already holds a quote with key.
// Must be called with mu held.
func (s *QuoteStore) bucketHas(c string, key domain.QuoteKey) bool {
	return slices.ContainsFunc(s.byCategory[c], func(i int) bool {
		return s.all[i].Key() == key
	})
}
