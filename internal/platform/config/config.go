// Package config loads service configuration with koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	DefaultServerPort     = 5000
	DefaultMaxRequestSize = 1 << 20

	// DefaultJWTSecret is only acceptable outside prod.
	DefaultJWTSecret   = "local-development-secret-change-me"
	DefaultBcryptCost  = 10
	DefaultTokenTTL    = 7 * 24 * time.Hour
	DefaultQuotesPath  = "data/quoteCache.json"
	DefaultUsersPath   = "data/users.json"
	DefaultSnapshotTTL = 10 * time.Minute

	DefaultProviderTimeout           = 2 * time.Second
	DefaultClientCircuitMaxFailures  = 5
	DefaultTransportMaxIdleConns     = 100
	DefaultTransportMaxIdleConnsHost = 10

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28

	envPrefix = "APP_"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"      validate:"required"`
	Client    ClientConfig    `koanf:"client"    validate:"required"`
	Store     StoreConfig     `koanf:"store"     validate:"required"`
	Services  ServicesConfig  `koanf:"services"  validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig configures the lumberjack-rotated log file.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// AuthConfig configures account tokens and password hashing.
type AuthConfig struct {
	JWTSecret  string        `koanf:"jwt_secret"  validate:"required,min=16"`
	TokenTTL   time.Duration `koanf:"token_ttl"   validate:"required,min=1m"`
	BcryptCost int           `koanf:"bcrypt_cost" validate:"required,min=4,max=31"`
	Issuer     string        `koanf:"issuer"`
}

// ClientConfig contains HTTP client settings for downstream services.
type ClientConfig struct {
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker" validate:"required"`
	Transport      TransportConfig      `koanf:"transport"       validate:"required"`
}

// CircuitBreakerConfig controls when the provider client stops calling out.
type CircuitBreakerConfig struct {
	MaxFailures int           `koanf:"max_failures" validate:"required,min=1"`
	Cooldown    time.Duration `koanf:"cooldown"     validate:"required,min=1s"`
}

// TransportConfig contains HTTP transport pool settings.
type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s"`
}

// StoreConfig locates the snapshot files and sets the flush cadence.
type StoreConfig struct {
	QuotesPath       string        `koanf:"quotes_path"       validate:"required"`
	UsersPath        string        `koanf:"users_path"        validate:"required"`
	SnapshotInterval time.Duration `koanf:"snapshot_interval" validate:"required,min=1s"`
}

// ServicesConfig contains configuration for downstream services.
type ServicesConfig struct {
	Quote ServiceEndpointConfig `koanf:"quote" validate:"required"`
}

// ServiceEndpointConfig describes one downstream service.
type ServiceEndpointConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Name    string        `koanf:"name"     validate:"required"`
	Timeout time.Duration `koanf:"timeout"  validate:"required,min=100ms"`
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quotevault",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "15s",
		"server.write_timeout":    "15s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "10s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/quotevault.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quotevault",
		"telemetry.sampling_rate": 1.0,

		"auth.jwt_secret":  DefaultJWTSecret,
		"auth.token_ttl":   DefaultTokenTTL.String(),
		"auth.bcrypt_cost": DefaultBcryptCost,
		"auth.issuer":      "quotevault",

		"client.circuit_breaker.max_failures":      DefaultClientCircuitMaxFailures,
		"client.circuit_breaker.cooldown":          "30s",
		"client.transport.max_idle_conns":          DefaultTransportMaxIdleConns,
		"client.transport.max_idle_conns_per_host": DefaultTransportMaxIdleConnsHost,
		"client.transport.idle_conn_timeout":       "90s",

		"store.quotes_path":       DefaultQuotesPath,
		"store.users_path":        DefaultUsersPath,
		"store.snapshot_interval": DefaultSnapshotTTL.String(),

		"services.quote.base_url": "https://api.quotable.io",
		"services.quote.name":     "quote-provider",
		"services.quote.timeout":  DefaultProviderTimeout.String(),
	}
}

// legacyEnv maps the variable names the service historically read to config keys.
var legacyEnv = map[string]string{
	"PORT":       "server.port",
	"JWT_SECRET": "auth.jwt_secret",
}

// Load reads configuration from dir with this precedence, highest first:
//  1. APP_ environment variables
//  2. legacy variables (PORT, JWT_SECRET)
//  3. {dir}/{profile}.yaml
//  4. {dir}/base.yaml
//  5. defaults
func Load(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadFileIfExists(k, filepath.Join(dir, "base.yaml")); err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		if err := loadFileIfExists(k, filepath.Join(dir, profile+".yaml")); err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		if value == "" {
			return "", nil
		}

		return legacyEnv[key], value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading legacy env vars: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper(defaults())), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKeyMapper resolves APP_AUTH_JWT_SECRET to auth.jwt_secret by matching
// against known keys, since both "." and "_" appear as "_" in a variable name.
// Unknown variables fall back to replacing every "_" with ".".
func envKeyMapper(known map[string]any) func(string) string {
	flat := make(map[string]string, len(known))
	for key := range known {
		flat[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(s string) string {
		name := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if key, ok := flat[name]; ok {
			return key
		}

		return strings.ReplaceAll(name, "_", ".")
	}
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
