package suggest

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// MinQueryLength is the shortest query that produces suggestions.
const MinQueryLength = 2

// Suggestion is a typeahead candidate.
type Suggestion struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// DefaultVocabulary is the built-in ingredient list, in display order.
var DefaultVocabulary = []string{
	"pomodoro", "basilico", "mozzarella", "aglio", "pasta",
	"pollo", "parmigiano", "cipolla", "olio oliva", "sale",
}

// Suggester filters a fixed vocabulary by substring.
type Suggester struct {
	entries []Suggestion
}

// NewSuggester builds ingredient suggestions numbered from 1. A nil vocabulary
// uses DefaultVocabulary.
func NewSuggester(vocabulary []string) *Suggester {
	if vocabulary == nil {
		vocabulary = DefaultVocabulary
	}
	entries := make([]Suggestion, 0, len(vocabulary))
	for i, v := range vocabulary {
		entries = append(entries, Suggestion{ID: strconv.Itoa(i + 1), Value: v, Type: "ingredient"})
	}
	return &Suggester{entries: entries}
}

// Suggest returns vocabulary entries containing query, case-insensitively,
// in vocabulary order. Queries shorter than MinQueryLength return nothing.
func (s *Suggester) Suggest(query string) []Suggestion {
	out := []Suggestion{}
	if utf8.RuneCountInString(query) < MinQueryLength {
		return out
	}
	q := strings.ToLower(query)
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Value), q) {
			out = append(out, e)
		}
	}
	return out
}
