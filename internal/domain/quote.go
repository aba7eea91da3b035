package domain

import (
	"slices"
	"strings"
)

// Quote is a quotation with its author and lowercase category labels.
// Two quotes are the same quote when Content and Author match exactly.
type Quote struct {
	Content    string
	Author     string
	Categories []string

	// AddedBy is the username that submitted the quote, empty for provider and seed quotes.
	AddedBy string
}

// QuoteKey is the dedupe identity of a quote.
type QuoteKey struct {
	Content string
	Author  string
}

// Key returns the (content, author) identity.
func (q Quote) Key() QuoteKey {
	return QuoteKey{Content: q.Content, Author: q.Author}
}

// SameAs reports whether q and other share content and author.
func (q Quote) SameAs(other Quote) bool {
	return q.Key() == other.Key()
}

// HasCategory reports whether q carries label.
func (q Quote) HasCategory(label string) bool {
	return slices.Contains(q.Categories, label)
}

// Clone returns a copy that shares no slices with q.
func (q Quote) Clone() Quote {
	q.Categories = slices.Clone(q.Categories)
	return q
}

// Validate checks the fields every stored quote must carry.
func (q Quote) Validate() error {
	if err := RequireText("content", q.Content); err != nil {
		return err
	}

	return RequireText("author", q.Author)
}

// NormalizeCategory lowercases and trims a category label.
func NormalizeCategory(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// NormalizeCategories lowercases labels, drops empty ones and removes duplicates
// while keeping first-seen order.
func NormalizeCategories(labels []string, extra ...string) []string {
	out := make([]string, 0, len(labels)+len(extra))

	for _, l := range slices.Concat(labels, extra) {
		n := NormalizeCategory(l)
		if n == "" || slices.Contains(out, n) {
			continue
		}

		out = append(out, n)
	}

	return out
}

// CloneQuotes deep-copies a slice of quotes. A nil input yields an empty slice.
func CloneQuotes(in []Quote) []Quote {
	out := make([]Quote, len(in))
	for i, q := range in {
		out[i] = q.Clone()
	}

	return out
}
