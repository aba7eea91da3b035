package domain

// SeedFallbackCount is how many seed quotes are returned when nothing else matches a category.
const SeedFallbackCount = 5

var seedQuotes = []Quote{
	{Content: "Be yourself; everyone else is already taken.", Author: "Oscar Wilde", Categories: []string{"wisdom", "inspiration"}},
	{Content: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Categories: []string{"success", "motivation"}},
	{Content: "Life is what happens when you're busy making other plans.", Author: "John Lennon", Categories: []string{"life", "wisdom"}},
	{Content: "In three words I can sum up everything I've learned about life: it goes on.", Author: "Robert Frost", Categories: []string{"life", "wisdom"}},
	{Content: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt", Categories: []string{"inspiration", "success"}},
	{Content: "Be the change that you wish to see in the world.", Author: "Mahatma Gandhi", Categories: []string{"inspiration", "wisdom"}},
	{Content: "Everything you can imagine is real.", Author: "Pablo Picasso", Categories: []string{"creativity", "inspiration"}},
	{Content: "The best way to predict the future is to create it.", Author: "Abraham Lincoln", Categories: []string{"success", "motivation"}},
	{Content: "If you tell the truth, you don't have to remember anything.", Author: "Mark Twain", Categories: []string{"wisdom", "humor"}},
	{Content: "A room without books is like a body without a soul.", Author: "Cicero", Categories: []string{"wisdom", "life"}},
	{Content: "You miss 100% of the shots you don't take.", Author: "Wayne Gretzky", Categories: []string{"success", "motivation"}},
	{Content: "Love all, trust a few, do wrong to none.", Author: "William Shakespeare", Categories: []string{"love", "wisdom"}},
	{Content: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney", Categories: []string{"success", "motivation"}},
	{Content: "The only impossible journey is the one you never begin.", Author: "Tony Robbins", Categories: []string{"inspiration", "motivation"}},
	{Content: "The purpose of our lives is to be happy.", Author: "Dalai Lama", Categories: []string{"happiness", "life"}},
}

// SeedQuotes returns a fresh copy of the built-in quotes.
func SeedQuotes() []Quote {
	return CloneQuotes(seedQuotes)
}

// SeedQuotesFor returns the seed quotes carrying label, falling back to the
// first SeedFallbackCount seeds when none match. The result is never empty.
func SeedQuotesFor(label string) []Quote {
	label = NormalizeCategory(label)

	var out []Quote

	for _, q := range seedQuotes {
		if q.HasCategory(label) {
			out = append(out, q.Clone())
		}
	}

	if len(out) == 0 {
		return CloneQuotes(seedQuotes[:SeedFallbackCount])
	}

	return out
}
