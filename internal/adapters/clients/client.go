package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotevault/internal/platform/config"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/quotevault/internal/adapters/clients"

	defaultTimeout = 2 * time.Second
)

// Config configures a Client.
type Config struct {
	BaseURL     string
	ServiceName string

	// Timeout bounds each call end to end. There are no retries.
	Timeout time.Duration

	Circuit   config.CircuitBreakerConfig
	Transport config.TransportConfig
	Logger    *slog.Logger

	// HTTPClient replaces the default client; used by tests.
	HTTPClient *http.Client
}

// Client issues single-attempt requests to one downstream service with a
// circuit breaker, OpenTelemetry spans and metrics, and request/correlation
// ID propagation.
type Client struct {
	http        *http.Client
	baseURL     string
	serviceName string
	timeout     time.Duration
	breaker     *Breaker
	tracer      trace.Tracer

	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

// New creates a Client.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "clients.Client"), slog.String("downstream", cfg.ServiceName))

	breaker := NewBreaker(BreakerConfig{MaxFailures: cfg.Circuit.MaxFailures, Cooldown: cfg.Circuit.Cooldown})
	breaker.OnStateChange(func(from, to State) {
		logger.Warn("circuit breaker state changed", slog.String("from", from.String()), slog.String("to", to.String()))
	})

	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requestTotal, err := meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Total number of HTTP client requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        cfg.Transport.MaxIdleConns,
				MaxIdleConnsPerHost: cfg.Transport.MaxIdleConnsPerHost,
				IdleConnTimeout:     cfg.Transport.IdleConnTimeout,
			},
		}
	}

	return &Client{
		http:            httpClient,
		baseURL:         strings.TrimSuffix(cfg.BaseURL, "/"),
		serviceName:     cfg.ServiceName,
		timeout:         timeout,
		breaker:         breaker,
		tracer:          otel.Tracer(instrumentationName),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}, nil
}

// Get issues a GET for path with the optional query.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := c.buildURL(path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return c.Do(ctx, req)
}

// Do sends req once. A 5xx answer counts against the breaker but is still
// returned to the caller; network errors and timeouts wrap ErrRequestFailed.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	if !c.breaker.Allow() {
		c.recordMetrics(ctx, req.Method, 0, time.Since(start), "circuit_open")
		logger.Debug("request short-circuited")

		return nil, ErrCircuitOpen
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)

	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	req = req.WithContext(ctx)
	c.injectHeaders(ctx, req)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		cancel()
		c.breaker.Failure()
		span.SetStatus(codes.Error, err.Error())
		c.recordMetrics(ctx, req.Method, 0, elapsed, "error")
		logger.Warn("request failed", slog.Duration("duration", elapsed), slog.Any("error", err))

		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	// The body is read after Do returns, so the timeout is released when it closes.
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.breaker.Failure()
	} else {
		c.breaker.Success()
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, "HTTP "+http.StatusText(resp.StatusCode))
	}

	c.recordMetrics(ctx, req.Method, resp.StatusCode, elapsed, fmt.Sprintf("%dxx", resp.StatusCode/100))
	logger.Debug("request completed", slog.Int("status", resp.StatusCode), slog.Duration("duration", elapsed))

	return resp, nil
}

// CircuitState returns the breaker position.
func (c *Client) CircuitState() State {
	return c.breaker.State()
}

// ServiceName returns the downstream service name.
func (c *Client) ServiceName() string {
	return c.serviceName
}

func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}

	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderCorrelationID, id)
	}
}

func (c *Client) buildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

func (c *Client) recordMetrics(ctx context.Context, method string, status int, d time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.serviceName),
		attribute.String("result", result),
	}

	if status > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", status))
	}

	c.requestDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attrs...))
	c.requestTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	defer b.cancel()
	return b.ReadCloser.Close()
}
