package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/mocks"
)

func newAccountService(t *testing.T) (*AccountService, *mocks.MockAccountStore, *mocks.MockTokenIssuer) {
	t.Helper()

	accounts := mocks.NewMockAccountStore(t)
	tokens := mocks.NewMockTokenIssuer(t)

	return NewAccountService(AccountServiceConfig{
		Accounts: accounts,
		Tokens:   tokens,
		Logger:   discardLogger(),
	}), accounts, tokens
}

var ada = domain.User{ID: 1, Username: "ada", Email: "ada@example.com", PasswordHash: "digest"}

func TestNewAccountService_PanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() { NewAccountService(AccountServiceConfig{Tokens: mocks.NewMockTokenIssuer(t)}) })
	assert.Panics(t, func() { NewAccountService(AccountServiceConfig{Accounts: mocks.NewMockAccountStore(t)}) })
}

func TestAccountService_Register(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		setup    func(*mocks.MockAccountStore, *mocks.MockTokenIssuer)
		errCheck func(error) bool
	}{
		{
			name:     "success",
			username: "ada", email: "ada@example.com", password: "pw",
			setup: func(a *mocks.MockAccountStore, tk *mocks.MockTokenIssuer) {
				a.EXPECT().Register(mock.Anything, "ada", "ada@example.com", "pw").Return(ada, nil)
				tk.EXPECT().Issue(domain.Identity{UserID: 1, Username: "ada"}).Return("signed", nil)
			},
		},
		{
			name:     "missing password",
			username: "ada", email: "ada@example.com",
			setup:    func(*mocks.MockAccountStore, *mocks.MockTokenIssuer) {},
			errCheck: domain.IsValidation,
		},
		{
			name:     "duplicate",
			username: "ada", email: "ada@example.com", password: "pw",
			setup: func(a *mocks.MockAccountStore, _ *mocks.MockTokenIssuer) {
				a.EXPECT().Register(mock.Anything, "ada", "ada@example.com", "pw").
					Return(domain.User{}, domain.NewConflictError("user", "email or username taken"))
			},
			errCheck: domain.IsConflict,
		},
		{
			name:     "token failure",
			username: "ada", email: "ada@example.com", password: "pw",
			setup: func(a *mocks.MockAccountStore, tk *mocks.MockTokenIssuer) {
				a.EXPECT().Register(mock.Anything, "ada", "ada@example.com", "pw").Return(ada, nil)
				tk.EXPECT().Issue(mock.Anything).Return("", errors.New("sign failed"))
			},
			errCheck: func(err error) bool { return err != nil && !domain.IsValidation(err) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accounts, tokens := newAccountService(t)
			tt.setup(accounts, tokens)

			session, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "signed", session.Token)
			assert.Equal(t, ada, session.User)
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, accounts, tokens := newAccountService(t)
		accounts.EXPECT().Authenticate(mock.Anything, "ada@example.com", "pw").Return(ada, nil)
		tokens.EXPECT().Issue(ada.Identity()).Return("signed", nil)

		session, err := svc.Login(context.Background(), "ada@example.com", "pw")

		require.NoError(t, err)
		assert.Equal(t, "signed", session.Token)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc, accounts, _ := newAccountService(t)
		accounts.EXPECT().Authenticate(mock.Anything, "ada@example.com", "nope").
			Return(domain.User{}, domain.ErrInvalidCredentials)

		_, err := svc.Login(context.Background(), "ada@example.com", "nope")

		assert.True(t, domain.IsInvalidCredentials(err))
	})

	t.Run("missing email", func(t *testing.T) {
		svc, _, _ := newAccountService(t)

		_, err := svc.Login(context.Background(), "", "pw")

		assert.True(t, domain.IsValidation(err))
	})
}

func TestAccountService_Favorites(t *testing.T) {
	wilde := domain.Quote{Content: "Be yourself.", Author: "Oscar Wilde", Categories: []string{"wisdom"}}

	t.Run("list", func(t *testing.T) {
		svc, accounts, _ := newAccountService(t)
		accounts.EXPECT().GetFavorites(mock.Anything, int64(1)).Return([]domain.Quote{wilde}, nil)

		got, err := svc.Favorites(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, []domain.Quote{wilde}, got)
	})

	t.Run("add normalizes categories", func(t *testing.T) {
		svc, accounts, _ := newAccountService(t)
		accounts.EXPECT().AddFavorite(mock.Anything, int64(1), wilde).Return([]domain.Quote{wilde}, nil)

		in := wilde
		in.Categories = []string{"Wisdom"}

		got, err := svc.AddFavorite(context.Background(), 1, in)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("add rejects incomplete quote", func(t *testing.T) {
		svc, _, _ := newAccountService(t)

		_, err := svc.AddFavorite(context.Background(), 1, domain.Quote{Content: "x"})

		assert.True(t, domain.IsValidation(err))
	})

	t.Run("add duplicate", func(t *testing.T) {
		svc, accounts, _ := newAccountService(t)
		accounts.EXPECT().AddFavorite(mock.Anything, int64(1), wilde).
			Return(nil, domain.NewConflictError("favorite", "quote already in favorites"))

		_, err := svc.AddFavorite(context.Background(), 1, wilde)

		assert.True(t, domain.IsConflict(err))
	})

	t.Run("remove", func(t *testing.T) {
		svc, accounts, _ := newAccountService(t)
		accounts.EXPECT().RemoveFavorite(mock.Anything, int64(1), wilde.Key()).Return([]domain.Quote{}, nil)

		got, err := svc.RemoveFavorite(context.Background(), 1, wilde.Content, wilde.Author)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("remove requires content and author", func(t *testing.T) {
		svc, _, _ := newAccountService(t)

		_, err := svc.RemoveFavorite(context.Background(), 1, "", "Oscar Wilde")

		assert.True(t, domain.IsValidation(err))
	})
}
