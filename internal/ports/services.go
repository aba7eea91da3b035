// Package ports defines the contracts between the application layer and its adapters.
//
// Conventions:
//   - context.Context comes first on every method that may block
//   - methods return domain types and domain errors, never adapter DTOs
//   - interfaces stay small; consumers depend only on what they call
package ports

import (
	"context"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// QuoteProvider is the remote quote service. Every failure, including
// timeouts and non-2xx answers, is reported as domain.ErrUnavailable.
type QuoteProvider interface {
	// RandomQuote fetches a single random quote.
	RandomQuote(ctx context.Context) (domain.Quote, error)

	// QuotesByCategory fetches quotes tagged with label.
	QuotesByCategory(ctx context.Context, label string) ([]domain.Quote, error)

	// Categories lists the provider's tag names.
	Categories(ctx context.Context) ([]string, error)
}

// QuoteStore is the in-memory quote collection with its category index.
// Reads never fail: the store always holds at least the seed quotes.
type QuoteStore interface {
	GetRandom(ctx context.Context) domain.Quote
	GetByCategory(ctx context.Context, label string) []domain.Quote

	// Merge adds quotes not already present by (content, author) and indexes
	// them under their own categories plus label, when label is non-empty.
	Merge(ctx context.Context, quotes []domain.Quote, label string)

	// AddUserQuote always appends, even when the quote duplicates an existing one.
	AddUserQuote(ctx context.Context, q domain.Quote) domain.Quote

	ListCategories(ctx context.Context) []string
}

// AccountStore holds registered users and their favorites.
type AccountStore interface {
	// Register returns domain.ErrConflict when the email or username is taken.
	Register(ctx context.Context, username, email, password string) (domain.User, error)

	// Authenticate returns domain.ErrInvalidCredentials for any mismatch.
	Authenticate(ctx context.Context, email, password string) (domain.User, error)

	GetByID(ctx context.Context, id int64) (domain.User, error)
	GetFavorites(ctx context.Context, userID int64) ([]domain.Quote, error)

	// AddFavorite returns domain.ErrConflict when the quote is already a favorite.
	AddFavorite(ctx context.Context, userID int64, q domain.Quote) ([]domain.Quote, error)

	// RemoveFavorite is a no-op when no favorite matches.
	RemoveFavorite(ctx context.Context, userID int64, key domain.QuoteKey) ([]domain.Quote, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Issue(id domain.Identity) (string, error)
	Verify(token string) (domain.Identity, error)
}

// SnapshotRepository persists a whole-state snapshot of type T.
// Load returns domain.ErrNotFound when nothing has been saved yet.
type SnapshotRepository[T any] interface {
	Load(ctx context.Context) (T, error)
	Save(ctx context.Context, snapshot T) error
}

// Flusher writes a store's current state to its snapshot location.
type Flusher interface {
	Name() string
	Flush(ctx context.Context) error
}
