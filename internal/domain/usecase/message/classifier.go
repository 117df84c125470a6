package message

import (
	"strings"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/usecase"
)

// DefaultGreetings are the keywords that earn a point each
var DefaultGreetings = []string{"привіт", "привет", "hello", "hi", "hey"}

// Classifier counts greeting keywords as case-insensitive substrings
type Classifier struct {
	greetings []string
}

// NewClassifier builds a classifier for the given keywords.
// Keywords are lowercased and deduplicated; an empty list means DefaultGreetings.
func NewClassifier(greetings []string) usecase.MessageClassifier {
	if len(greetings) == 0 {
		greetings = DefaultGreetings
	}

	seen := make(map[string]struct{}, len(greetings))
	normalized := make([]string, 0, len(greetings))
	for _, g := range greetings {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		normalized = append(normalized, g)
	}

	return &Classifier{greetings: normalized}
}

// Classify sums the non-overlapping occurrences of every keyword.
// Matches are substrings, so "this" contains one "hi".
func (c *Classifier) Classify(text string) int {
	if text == "" {
		return 0
	}

	lower := strings.ToLower(text)
	count := 0
	for _, g := range c.greetings {
		count += strings.Count(lower, g)
	}
	return count
}
