package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotevault/internal/ports"
	"github.com/jsamuelsen/quotevault/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds API requests when RouterConfig.Timeout is unset.
const DefaultRequestTimeout = 10 * time.Second

// RouterConfig contains what SetupRouter needs to mount every route.
type RouterConfig struct {
	// ServiceName names the otelgin server spans.
	ServiceName string

	HealthHandler  *handlers.HealthHandler
	QuoteHandler   *handlers.QuoteHandler
	AccountHandler *handlers.AccountHandler

	// Tokens verifies bearer tokens on protected routes.
	Tokens ports.TokenIssuer

	// Timeout is the request deadline on API routes.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in this order:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry (otelgin plus the trace ID on the context logger)
//  5. Logging (skips /-/)
//
// Route groups:
//   - /-/: health, build info and metrics
//   - /api/v1/: the quote and account API
//   - /api/: the same handlers under the legacy paths
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging())

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	requireAuth := middleware.RequireAuth(cfg.Tokens)

	v1 := engine.Group("/api/v1", middleware.Timeout(timeout))
	setupAPIRoutes(v1, cfg, requireAuth, apiPaths{
		random:   "/quotes/random",
		addQuote: "/quotes",
	})

	legacy := engine.Group("/api", middleware.Timeout(timeout))
	setupAPIRoutes(legacy, cfg, requireAuth, apiPaths{
		random:   "/random-quote",
		addQuote: "/add-quote",
	})
}

// apiPaths holds the routes whose path differs between /api/v1 and /api.
type apiPaths struct {
	random   string
	addQuote string
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig, requireAuth gin.HandlerFunc, paths apiPaths) {
	if q := cfg.QuoteHandler; q != nil {
		rg.GET(paths.random, q.GetRandomQuote)
		rg.GET("/quotes/category/:category", q.GetQuotesByCategory)
		rg.GET("/categories", q.ListCategories)
		rg.POST(paths.addQuote, requireAuth, q.AddQuote)
	}

	if a := cfg.AccountHandler; a != nil {
		auth := rg.Group("/auth")
		auth.POST("/register", a.Register)
		auth.POST("/login", a.Login)

		favorites := rg.Group("/favorites", requireAuth)
		favorites.GET("", a.ListFavorites)
		favorites.POST("", a.AddFavorite)
		favorites.DELETE("", a.RemoveFavorite)
	}
}
