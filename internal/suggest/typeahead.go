package suggest

import "time"

// Typeahead debounces raw input and reports suggestions for the settled query.
type Typeahead struct {
	suggester *Suggester
	debouncer *Debouncer
	onResult  func(query string, results []Suggestion)
}

func NewTypeahead(s *Suggester, delay time.Duration, onResult func(query string, results []Suggestion)) *Typeahead {
	return &Typeahead{suggester: s, debouncer: NewDebouncer(delay), onResult: onResult}
}

// Input records the latest query text.
func (t *Typeahead) Input(query string) {
	t.debouncer.Submit(func() {
		t.onResult(query, t.suggester.Suggest(query))
	})
}

func (t *Typeahead) Stop() {
	t.debouncer.Stop()
}
