// Package main is the entry point for the quotevault service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/jsamuelsen/quotevault/internal/adapters/auth"
	"github.com/jsamuelsen/quotevault/internal/adapters/clients"
	"github.com/jsamuelsen/quotevault/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotevault/internal/adapters/http"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotevault/internal/adapters/scheduler"
	"github.com/jsamuelsen/quotevault/internal/adapters/snapshot"
	"github.com/jsamuelsen/quotevault/internal/adapters/store"
	"github.com/jsamuelsen/quotevault/internal/app"
	"github.com/jsamuelsen/quotevault/internal/platform/config"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
	"github.com/jsamuelsen/quotevault/internal/platform/telemetry"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:    "quotevault",
		Usage:   "serve quotes, accounts and favorites over HTTP",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "configuration profile (local, dev, qa, prod, test)",
				Value:   "local",
				Sources: cli.EnvVars("APP_ENVIRONMENT"),
			},
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "directory holding base.yaml and the profile files",
				Value:   "configs",
				Sources: cli.EnvVars("APP_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file loaded before configuration; skipped when missing",
				Value: ".env",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	// 1. Load .env so PORT, JWT_SECRET and APP_* variables can live in a file.
	if err := loadEnvFile(cmd.String("env-file")); err != nil {
		return err
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(cmd.String("config-dir"), cmd.String("profile"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("using the built-in JWT secret; set JWT_SECRET or APP_AUTH_JWT_SECRET")
	}

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Restore the stores from their snapshots
	quoteStore := store.NewQuoteStore(store.QuoteStoreConfig{
		Repo:   snapshot.NewFile[store.QuoteSnapshot](cfg.Store.QuotesPath),
		Logger: logger,
	})
	if err := quoteStore.LoadOrSeed(ctx); err != nil {
		return err
	}

	accountStore := store.NewAccountStore(store.AccountStoreConfig{
		Hasher: auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		Repo:   snapshot.NewFile[store.UserSnapshot](cfg.Store.UsersPath),
		Logger: logger,
	})
	if err := accountStore.Load(ctx); err != nil {
		return err
	}

	if err := telemetry.RegisterStoreCollectors(prometheus.DefaultRegisterer, quoteStore, accountStore); err != nil {
		return fmt.Errorf("registering store metrics: %w", err)
	}

	tokens, err := auth.NewJWTIssuer(auth.JWTConfig{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.TokenTTL,
		Issuer: cfg.Auth.Issuer,
	})
	if err != nil {
		return fmt.Errorf("creating token issuer: %w", err)
	}

	// 6. Create the quote provider client (ACL pattern)
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Quote.BaseURL,
		ServiceName: cfg.Services.Quote.Name,
		Timeout:     cfg.Services.Quote.Timeout,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating HTTP client: %w", err)
	}

	quoteClient := acl.NewQuoteClient(acl.QuoteClientConfig{
		Client: httpClient,
		Logger: logger,
	})

	// 7. Health checks: the snapshot directory is required, the provider is optional
	healthRegistry := ports.NewHealthRegistry()

	if err := healthRegistry.Register(snapshot.NewDirChecker(filepath.Dir(cfg.Store.QuotesPath))); err != nil {
		return fmt.Errorf("registering snapshot health check: %w", err)
	}

	if err := healthRegistry.Register(quoteClient); err != nil {
		return fmt.Errorf("registering quote client health check: %w", err)
	}

	// 8. Application services
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Provider: quoteClient,
		Store:    quoteStore,
		Metrics:  telemetry.NewQuoteMetrics(),
		Logger:   logger,
	})

	accountService := app.NewAccountService(app.AccountServiceConfig{
		Accounts: accountStore,
		Tokens:   tokens,
		Logger:   logger,
	})

	// 9. HTTP server and routes
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		ServiceName:    cfg.App.Name,
		HealthHandler:  handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime), nil),
		QuoteHandler:   handlers.NewQuoteHandler(quoteService),
		AccountHandler: handlers.NewAccountHandler(accountService),
		Tokens:         tokens,
		Timeout:        cfg.Server.RequestTimeout,
	})

	// 10. Periodic snapshots
	flushers := []ports.Flusher{quoteStore, accountStore}

	flusher := scheduler.New(scheduler.Config{
		Interval: cfg.Store.SnapshotInterval,
		Flushers: flushers,
		Logger:   logger,
	})
	if err := flusher.Start(); err != nil {
		return fmt.Errorf("starting snapshot scheduler: %w", err)
	}

	// 11. Start server (non-blocking) and wait
	serverErr := server.Start()

	runErr := waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)

	// 12. Final snapshot after the last request has drained
	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := flusher.Stop(stopCtx); err != nil {
		logger.Warn("snapshot scheduler stop", slog.Any("error", err))
	}

	if err := scheduler.FlushAll(stopCtx, flushers...); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("final snapshot: %w", err))
	}

	logger.Info("shutdown complete")

	return runErr
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}

	return nil
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
