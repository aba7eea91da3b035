package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/jsamuelsen/quotevault/internal/adapters/clients"
	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
)

const (
	pathRandom = "/random"
	pathQuotes = "/quotes"
	pathTags   = "/tags"
)

// QuoteClientConfig contains configuration for the quote client.
type QuoteClientConfig struct {
	// Client is the HTTP client bound to the provider base URL.
	Client *clients.Client

	Logger *slog.Logger
}

// QuoteClient implements ports.QuoteProvider against the quotable API.
type QuoteClient struct {
	client *clients.Client
	name   string
	logger *slog.Logger
}

// NewQuoteClient creates the provider adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewQuoteClient(cfg QuoteClientConfig) *QuoteClient {
	if cfg.Client == nil {
		panic("QuoteClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteClient{
		client: cfg.Client,
		name:   cfg.Client.ServiceName(),
		logger: logger.With(slog.String("component", "acl.QuoteClient")),
	}
}

// RandomQuote fetches one random quote.
func (c *QuoteClient) RandomQuote(ctx context.Context) (domain.Quote, error) {
	body, err := c.get(ctx, pathRandom, nil, "random quote")
	if err != nil {
		return domain.Quote{}, err
	}

	ext, err := DecodeResponse[quotableQuote](body)
	if err != nil {
		return domain.Quote{}, domain.NewUnavailableError(c.name, err.Error())
	}

	q, err := translateQuote(&ext)
	if err != nil {
		return domain.Quote{}, domain.NewUnavailableError(c.name, "invalid quote: "+err.Error())
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated provider quote",
		slog.String("author", q.Author),
		slog.Any("categories", q.Categories))

	return q, nil
}

// QuotesByCategory fetches the first page of quotes tagged with label.
// An empty result is not an error.
func (c *QuoteClient) QuotesByCategory(ctx context.Context, label string) ([]domain.Quote, error) {
	label = domain.NormalizeCategory(label)

	body, err := c.get(ctx, pathQuotes, url.Values{"tags": {label}}, "quotes by category")
	if err != nil {
		return nil, err
	}

	list, err := DecodeResponse[quotableList](body)
	if err != nil {
		return nil, domain.NewUnavailableError(c.name, err.Error())
	}

	quotes, err := TranslateSlice(list.Results, translateQuote)
	if err != nil {
		return nil, domain.NewUnavailableError(c.name, "invalid quote: "+err.Error())
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated provider quotes",
		slog.String("category", label),
		slog.Int("count", len(quotes)))

	return quotes, nil
}

// Categories lists the provider's tag names, lowercased.
func (c *QuoteClient) Categories(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, pathTags, nil, "list tags")
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return nil, domain.NewUnavailableError(c.name, "reading tags: "+err.Error())
	}

	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsArray() {
		return nil, domain.NewUnavailableError(c.name, "tags response is not a JSON array")
	}

	names := gjson.GetBytes(raw, "#.name").Array()
	labels := make([]string, 0, len(names))

	for _, n := range names {
		labels = append(labels, n.String())
	}

	return domain.NormalizeCategories(labels), nil
}

// get issues the request and returns the body of a 2xx answer. Every other
// outcome is mapped to a domain.UnavailableError.
func (c *QuoteClient) get(ctx context.Context, path string, query url.Values, operation string) (io.ReadCloser, error) {
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	resp, err := c.client.Get(ctx, path, query)
	if err != nil {
		return nil, MapHTTPError(nil, err, c.name, operation)
	}

	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()

		mapped := MapHTTPError(resp, nil, c.name, operation)
		logging.FromContext(ctx).WarnContext(ctx, "quote provider error",
			slog.Int("status_code", resp.StatusCode),
			slog.Any("error", mapped))

		return nil, mapped
	}

	return resp.Body, nil
}

// Name returns the health check name.
func (c *QuoteClient) Name() string {
	return c.name
}

// Check probes the tags endpoint.
func (c *QuoteClient) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, pathTags, nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quote provider returned status %d", resp.StatusCode)
	}

	return nil
}

// Optional marks the provider as non-critical: the service keeps answering
// from cached and seed quotes while it is down.
func (c *QuoteClient) Optional() bool {
	return true
}
