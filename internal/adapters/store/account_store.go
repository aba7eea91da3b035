package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

// AccountStoreConfig configures an AccountStore.
type AccountStoreConfig struct {
	// Hasher digests passwords. Required.
	Hasher ports.PasswordHasher

	// Repo persists snapshots. Nil keeps the store memory-only.
	Repo ports.SnapshotRepository[UserSnapshot]

	Logger *slog.Logger
	Now    func() time.Time
}

// AccountStore keeps registered users in registration order. Users are never
// removed, so positions are stable.
type AccountStore struct {
	mu     sync.RWMutex
	users  []domain.User
	byID   map[int64]int
	nextID int64

	persistMu sync.Mutex
	repo      ports.SnapshotRepository[UserSnapshot]
	hasher    ports.PasswordHasher
	logger    *slog.Logger
	now       func() time.Time
}

var _ ports.AccountStore = (*AccountStore)(nil)

// NewAccountStore returns an empty store.
// Panics if Hasher is nil.
func NewAccountStore(cfg AccountStoreConfig) *AccountStore {
	if cfg.Hasher == nil {
		panic("AccountStore: Hasher is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &AccountStore{
		byID:   make(map[int64]int),
		nextID: 1,
		repo:   cfg.Repo,
		hasher: cfg.Hasher,
		logger: logger.With(slog.String("store", "users")),
		now:    now,
	}
}

// Load restores the saved users. A missing snapshot leaves the store empty.
func (s *AccountStore) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	snap, err := s.repo.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.InfoContext(ctx, "no user snapshot found, starting empty")
		return nil
	}

	if err != nil {
		return fmt.Errorf("loading user snapshot: %w", err)
	}

	s.Restore(ctx, snap)
	s.logger.InfoContext(ctx, "user snapshot loaded", slog.Int("users", s.UserCount()))

	return nil
}

// Register creates a user. A taken email or username yields domain.ErrConflict.
func (s *AccountStore) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	for _, f := range []struct{ name, value string }{
		{"username", username},
		{"email", email},
		{"password", password},
	} {
		if err := domain.RequireText(f.name, f.value); err != nil {
			return domain.User{}, err
		}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing password: %w", err)
	}

	s.mu.Lock()

	for _, u := range s.users {
		if u.Email == email || u.Username == username {
			s.mu.Unlock()
			return domain.User{}, domain.NewConflictError("user", "email or username taken")
		}
	}

	user := domain.User{
		ID:           s.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Favorites:    []domain.Quote{},
		CreatedAt:    s.now().UTC(),
	}

	s.nextID++
	s.byID[user.ID] = len(s.users)
	s.users = append(s.users, user)
	s.mu.Unlock()

	s.persist(ctx)

	return user.Clone(), nil
}

// Authenticate checks email and password. Any mismatch yields
// domain.ErrInvalidCredentials without saying which part failed.
func (s *AccountStore) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID returns the user with id.
func (s *AccountStore) GetByID(_ context.Context, id int64) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.User{}, userNotFound(id)
	}

	return s.users[i].Clone(), nil
}

// GetByEmail returns the user registered with email.
func (s *AccountStore) GetByEmail(_ context.Context, email string) (domain.User, error) {
	return s.find(func(u domain.User) bool { return u.Email == email }, email)
}

// GetByUsername returns the user registered as username.
func (s *AccountStore) GetByUsername(_ context.Context, username string) (domain.User, error) {
	return s.find(func(u domain.User) bool { return u.Username == username }, username)
}

// GetFavorites returns the user's favorites in the order they were added.
func (s *AccountStore) GetFavorites(ctx context.Context, userID int64) ([]domain.Quote, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.Favorites, nil
}

// AddFavorite appends q to the user's favorites. A favorite with the same
// content and author yields domain.ErrConflict.
func (s *AccountStore) AddFavorite(ctx context.Context, userID int64, q domain.Quote) ([]domain.Quote, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()

	i, ok := s.byID[userID]
	if !ok {
		s.mu.Unlock()
		return nil, userNotFound(userID)
	}

	if s.users[i].FavoriteIndex(q.Key()) >= 0 {
		s.mu.Unlock()
		return nil, domain.NewConflictError("favorite", "quote already in favorites")
	}

	s.users[i].Favorites = append(s.users[i].Favorites, q.Clone())
	favorites := domain.CloneQuotes(s.users[i].Favorites)
	s.mu.Unlock()

	s.persist(ctx)

	return favorites, nil
}

// RemoveFavorite drops the favorite matching key. Nothing matching is not an error.
func (s *AccountStore) RemoveFavorite(ctx context.Context, userID int64, key domain.QuoteKey) ([]domain.Quote, error) {
	s.mu.Lock()

	i, ok := s.byID[userID]
	if !ok {
		s.mu.Unlock()
		return nil, userNotFound(userID)
	}

	kept := make([]domain.Quote, 0, len(s.users[i].Favorites))
	for _, f := range s.users[i].Favorites {
		if f.Key() != key {
			kept = append(kept, f)
		}
	}

	s.users[i].Favorites = kept
	favorites := domain.CloneQuotes(kept)
	s.mu.Unlock()

	s.persist(ctx)

	return favorites, nil
}

// Snapshot exports every user.
func (s *AccountStore) Snapshot(_ context.Context) UserSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]UserRecord, len(s.users))
	for i, u := range s.users {
		records[i] = userToRecord(u)
	}

	return UserSnapshot{
		Version: SnapshotVersion,
		SavedAt: s.now().UTC(),
		Users:   records,
	}
}

// Restore replaces the state with snap. Records missing an id, or repeating
// one, are given fresh ids above the highest restored id.
func (s *AccountStore) Restore(ctx context.Context, snap UserSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make([]domain.User, 0, len(snap.Users))
	s.byID = make(map[int64]int, len(snap.Users))
	s.nextID = 1

	var renumber []int

	dropped := 0

	for _, r := range snap.Users {
		u := userFromRecord(r)

		var n int

		u.Favorites, n = uniqueFavorites(u.Favorites)
		dropped += n

		if _, dup := s.byID[u.ID]; u.ID <= 0 || dup {
			renumber = append(renumber, len(s.users))
			s.users = append(s.users, u)

			continue
		}

		s.byID[u.ID] = len(s.users)
		s.users = append(s.users, u)
		s.nextID = max(s.nextID, u.ID+1)
	}

	for _, i := range renumber {
		s.users[i].ID = s.nextID
		s.byID[s.nextID] = i
		s.nextID++
	}

	if len(renumber) > 0 {
		s.logger.WarnContext(ctx, "renumbered user records", slog.Int("count", len(renumber)))
	}

	if dropped > 0 {
		s.logger.WarnContext(ctx, "dropped duplicate favorites", slog.Int("count", dropped))
	}
}

// uniqueFavorites keeps the first favorite per (content, author) and reports
// how many were dropped. The result is never nil.
func uniqueFavorites(favs []domain.Quote) ([]domain.Quote, int) {
	out := make([]domain.Quote, 0, len(favs))
	seen := make(map[domain.QuoteKey]bool, len(favs))

	for _, q := range favs {
		if seen[q.Key()] {
			continue
		}

		seen[q.Key()] = true
		out = append(out, q)
	}

	return out, len(favs) - len(out)
}

// Flush writes the current state to the snapshot repository.
func (s *AccountStore) Flush(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if err := s.repo.Save(ctx, s.Snapshot(ctx)); err != nil {
		return fmt.Errorf("saving user snapshot: %w", err)
	}

	return nil
}

// Name identifies the store to the flusher.
func (s *AccountStore) Name() string {
	return "users"
}

// UserCount returns the number of registered users.
func (s *AccountStore) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users)
}

func (s *AccountStore) persist(ctx context.Context) {
	if err := s.Flush(context.WithoutCancel(ctx)); err != nil {
		s.logger.WarnContext(ctx, "user snapshot write failed", slog.Any("error", err))
	}
}

func (s *AccountStore) find(match func(domain.User) bool, id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			return u.Clone(), nil
		}
	}

	return domain.User{}, domain.NewNotFoundError("user", id)
}

func userNotFound(id int64) error {
	return domain.NewNotFoundError("user", strconv.FormatInt(id, 10))
}
