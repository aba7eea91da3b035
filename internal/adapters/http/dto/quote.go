package dto

import "github.com/jsamuelsen/quotevault/internal/domain"

// Quote is the wire form of a quote.
type Quote struct {
	Content    string   `json:"content" validate:"required,notblank"`
	Author     string   `json:"author" validate:"required,notblank"`
	Categories []string `json:"categories"`
	AddedBy    string   `json:"addedBy,omitempty"`
}

// FromQuote converts a domain quote. Categories are never null on the wire.
func FromQuote(q domain.Quote) Quote {
	cats := q.Categories
	if cats == nil {
		cats = []string{}
	}

	return Quote{
		Content:    q.Content,
		Author:     q.Author,
		Categories: cats,
		AddedBy:    q.AddedBy,
	}
}

// FromQuotes converts a slice of domain quotes; nil becomes an empty array.
func FromQuotes(quotes []domain.Quote) []Quote {
	out := make([]Quote, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}

	return out
}

// ToDomain converts the wire quote. AddedBy is not trusted from clients.
func (q Quote) ToDomain() domain.Quote {
	return domain.Quote{
		Content:    q.Content,
		Author:     q.Author,
		Categories: domain.NormalizeCategories(q.Categories),
	}
}

// AddQuoteRequest is the body of POST /quotes.
type AddQuoteRequest struct {
	Content    string   `json:"content" validate:"required,notblank"`
	Author     string   `json:"author" validate:"required,notblank"`
	Categories []string `json:"categories" validate:"max=20"`
}
