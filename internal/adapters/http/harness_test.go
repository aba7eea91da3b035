package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen/quotevault/internal/adapters/auth"
	"github.com/jsamuelsen/quotevault/internal/adapters/clients"
	"github.com/jsamuelsen/quotevault/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotevault/internal/adapters/snapshot"
	"github.com/jsamuelsen/quotevault/internal/adapters/store"
	"github.com/jsamuelsen/quotevault/internal/app"
	"github.com/jsamuelsen/quotevault/internal/platform/config"
	"github.com/jsamuelsen/quotevault/internal/platform/telemetry"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type providerMode int

const (
	providerUp providerMode = iota
	providerSlow
	providerDown
)

type providerQuote struct {
	ID      string   `json:"_id"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// fakeQuotable serves the quotable endpoints the provider adapter calls.
type fakeQuotable struct {
	mu     sync.Mutex
	mode   providerMode
	random providerQuote
	byTag  map[string][]providerQuote
	tags   []string
	delay  time.Duration
}

func newFakeQuotable() *fakeQuotable {
	return &fakeQuotable{
		random: providerQuote{ID: "r1", Content: "Simplicity is the soul of efficiency.", Author: "Austin Freeman", Tags: []string{"Technology"}},
		byTag:  map[string][]providerQuote{},
		tags:   []string{"Famous Quotes", "Technology"},
		delay:  time.Second,
	}
}

func (f *fakeQuotable) setMode(m providerMode) {
	f.mu.Lock()
	f.mode = m
	f.mu.Unlock()
}

func (f *fakeQuotable) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	mode, delay := f.mode, f.delay
	random := f.random
	results := f.byTag[r.URL.Query().Get("tags")]
	tags := append([]string(nil), f.tags...)
	f.mu.Unlock()

	switch mode {
	case providerDown:
		w.WriteHeader(http.StatusBadGateway)
		return
	case providerSlow:
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	case providerUp:
	}

	w.Header().Set("Content-Type", "application/json")

	var body any

	switch r.URL.Path {
	case "/random":
		body = random
	case "/quotes":
		if results == nil {
			results = []providerQuote{}
		}

		body = map[string]any{"count": len(results), "totalCount": len(results), "results": results}
	case "/tags":
		names := make([]map[string]string, len(tags))
		for i, t := range tags {
			names[i] = map[string]string{"name": t}
		}

		body = names
	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}

	_ = json.NewEncoder(w).Encode(body)
}

// testApp is the whole service wired as in cmd/service, against a fake provider.
type testApp struct {
	engine   *gin.Engine
	quotes   *store.QuoteStore
	accounts *store.AccountStore
	provider *fakeQuotable
	dataDir  string
}

func newTestApp(t testing.TB) *testApp {
	t.Helper()

	ctx := context.Background()
	dir := t.TempDir()

	quotes := store.NewQuoteStore(store.QuoteStoreConfig{
		Repo:   snapshot.NewFile[store.QuoteSnapshot](filepath.Join(dir, "quoteCache.json")),
		Logger: discard,
	})
	require.NoError(t, quotes.LoadOrSeed(ctx))

	accounts := store.NewAccountStore(store.AccountStoreConfig{
		Hasher: auth.NewBcryptHasher(bcrypt.MinCost),
		Repo:   snapshot.NewFile[store.UserSnapshot](filepath.Join(dir, "users.json")),
		Logger: discard,
	})
	require.NoError(t, accounts.Load(ctx))

	tokens, err := auth.NewJWTIssuer(auth.JWTConfig{Secret: "test-secret-0123456789", TTL: time.Hour, Issuer: "quotevault"})
	require.NoError(t, err)

	fake := newFakeQuotable()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := clients.New(&clients.Config{
		BaseURL:     srv.URL,
		ServiceName: "quotable",
		Timeout:     100 * time.Millisecond,
		Circuit:     config.CircuitBreakerConfig{MaxFailures: 1000, Cooldown: time.Second},
		Logger:      discard,
	})
	require.NoError(t, err)

	provider := acl.NewQuoteClient(acl.QuoteClientConfig{Client: client, Logger: discard})

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(snapshot.NewDirChecker(dir)))
	require.NoError(t, registry.Register(provider))

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		ServiceName:   "quotevault",
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "unknown"), prometheus.NewRegistry()),
		QuoteHandler: handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{
			Provider: provider,
			Store:    quotes,
			Metrics:  telemetry.NewQuoteMetrics(),
			Logger:   discard,
		})),
		AccountHandler: handlers.NewAccountHandler(app.NewAccountService(app.AccountServiceConfig{
			Accounts: accounts,
			Tokens:   tokens,
			Logger:   discard,
		})),
		Tokens:  tokens,
		Timeout: 5 * time.Second,
	})

	return &testApp{engine: engine, quotes: quotes, accounts: accounts, provider: fake, dataDir: dir}
}

// do sends a request with an optional JSON body and bearer token.
func (a *testApp) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	return w
}
