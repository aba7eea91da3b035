package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// maxBodyBytes caps how much of a provider body is decoded.
const maxBodyBytes = 1 << 20

// DecodeResponse reads and decodes a JSON body into T, closing the body.
func DecodeResponse[T any](body io.ReadCloser) (T, error) {
	var result T

	if body == nil {
		return result, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	if err := json.NewDecoder(io.LimitReader(body, maxBodyBytes)).Decode(&result); err != nil {
		return result, fmt.Errorf("decoding response: %w", err)
	}

	return result, nil
}

// Translator converts one external DTO to a domain value, validating it.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// TranslateSlice applies translate to every item and stops at the first error.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, error) {
	result := make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}

// quotableQuote is the provider's quote shape.
type quotableQuote struct {
	ID      string   `json:"_id"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// quotableList is the paginated envelope of GET /quotes.
type quotableList struct {
	Count      int             `json:"count"`
	TotalCount int             `json:"totalCount"`
	Results    []quotableQuote `json:"results"`
}

// translateQuote maps a provider quote onto the domain. Tags become
// lowercase categories; the provider id is dropped since quotes are
// identified by content and author.
func translateQuote(ext *quotableQuote) (domain.Quote, error) {
	q := domain.Quote{
		Content:    ext.Content,
		Author:     ext.Author,
		Categories: domain.NormalizeCategories(ext.Tags),
	}

	if err := q.Validate(); err != nil {
		return domain.Quote{}, err
	}

	return q, nil
}
