package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

// AccountServiceConfig contains configuration for the account service.
type AccountServiceConfig struct {
	Accounts ports.AccountStore
	Tokens   ports.TokenIssuer
	Logger   *slog.Logger
}

// Session is a signed-in user and the bearer token that proves it.
type Session struct {
	Token string
	User  domain.User
}

// AccountService handles registration, login and favorites.
type AccountService struct {
	accounts ports.AccountStore
	tokens   ports.TokenIssuer
	logger   *slog.Logger
}

// NewAccountService creates an account service.
// Panics if Accounts or Tokens is nil. Defaults logger to slog.Default() if nil.
func NewAccountService(cfg AccountServiceConfig) *AccountService {
	if cfg.Accounts == nil {
		panic("AccountService: Accounts is required")
	}

	if cfg.Tokens == nil {
		panic("AccountService: Tokens is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountService{accounts: cfg.Accounts, tokens: cfg.Tokens, logger: logger}
}

// Register creates an account and signs the user in.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (Session, error) {
	if err := requireAll("username", username, "email", email, "password", password); err != nil {
		return Session{}, err
	}

	user, err := s.accounts.Register(ctx, username, email, password)
	if err != nil {
		return Session{}, err
	}

	session, err := s.session(user)
	if err != nil {
		return Session{}, err
	}

	s.logger.InfoContext(logging.WithUser(ctx, user.ID, user.Username), "user registered")

	return session, nil
}

// Login signs in with email and password.
func (s *AccountService) Login(ctx context.Context, email, password string) (Session, error) {
	if err := requireAll("email", email, "password", password); err != nil {
		return Session{}, err
	}

	user, err := s.accounts.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.InfoContext(ctx, "login rejected")
		return Session{}, err
	}

	session, err := s.session(user)
	if err != nil {
		return Session{}, err
	}

	s.logger.InfoContext(logging.WithUser(ctx, user.ID, user.Username), "user logged in")

	return session, nil
}

// Favorites lists the user's favorites.
func (s *AccountService) Favorites(ctx context.Context, userID int64) ([]domain.Quote, error) {
	return s.accounts.GetFavorites(ctx, userID)
}

// AddFavorite saves q for the user and returns the updated list.
func (s *AccountService) AddFavorite(ctx context.Context, userID int64, q domain.Quote) ([]domain.Quote, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	q.Categories = domain.NormalizeCategories(q.Categories)

	return s.accounts.AddFavorite(ctx, userID, q)
}

// RemoveFavorite drops the favorite with content and author, if present.
func (s *AccountService) RemoveFavorite(ctx context.Context, userID int64, content, author string) ([]domain.Quote, error) {
	if err := requireAll("content", content, "author", author); err != nil {
		return nil, err
	}

	return s.accounts.RemoveFavorite(ctx, userID, domain.QuoteKey{Content: content, Author: author})
}

func (s *AccountService) session(user domain.User) (Session, error) {
	token, err := s.tokens.Issue(user.Identity())
	if err != nil {
		return Session{}, fmt.Errorf("issuing token: %w", err)
	}

	return Session{Token: token, User: user}, nil
}

// requireAll takes field/value pairs and returns the first missing one.
func requireAll(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := domain.RequireText(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}

	return nil
}
