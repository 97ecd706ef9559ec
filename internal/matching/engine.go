package matching

import (
	"sort"
	"strings"

	"chef-backend/internal/recipes"
)

// Match is a recipe annotated with its compatibility against a selection.
// It is derived per query and never stored.
type Match struct {
	recipes.Recipe
	CompatibilityScore     float64 `json:"compatibilityScore"`
	MatchingIngredients    int     `json:"matchingIngredients"`
	HasMatchingIngredients bool    `json:"hasMatchingIngredients"`
}

// Breakdown partitions a recipe's ingredients against a selection.
type Breakdown struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Engine ranks recipes by ingredient compatibility. It holds no mutable state.
type Engine struct {
	synonyms SynonymTable
}

// NewEngine builds an engine over the given synonym table; nil uses DefaultSynonyms.
func NewEngine(synonyms SynonymTable) *Engine {
	if synonyms == nil {
		synonyms = DefaultSynonyms()
	}
	return &Engine{synonyms: synonyms.With("")}
}

// Matches reports whether a selected term matches a recipe ingredient.
// Matching is permissive: "olio" matches "olio extravergine" and
// the reverse, and no accent folding is applied.
func (e *Engine) Matches(selected, ingredient string) bool {
	if strings.EqualFold(selected, ingredient) {
		return true
	}
	sel := strings.ToLower(selected)
	ing := strings.ToLower(ingredient)
	if strings.Contains(ing, sel) || strings.Contains(sel, ing) {
		return true
	}
	for _, s := range e.synonyms.Expand(sel) {
		if strings.Contains(ing, s) {
			return true
		}
	}
	return false
}

// FilterAndRank scores every recipe against selected and returns those with at
// least one matching ingredient, best score first, then quickest, then catalog order.
// An empty selection returns the catalog unchanged.
func (e *Engine) FilterAndRank(selected []string, catalog []recipes.Recipe) []Match {
	terms := usableTerms(selected)
	if len(terms) == 0 {
		out := make([]Match, len(catalog))
		for i, r := range catalog {
			out[i] = Match{Recipe: r}
		}
		return out
	}

	out := make([]Match, 0, len(catalog))
	for _, r := range catalog {
		if len(r.Ingredients) == 0 {
			continue
		}
		count := 0
		for _, ing := range r.Ingredients {
			if e.matchesAny(terms, ing) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		out = append(out, Match{
			Recipe:                 r,
			CompatibilityScore:     float64(count) / float64(len(r.Ingredients)),
			MatchingIngredients:    count,
			HasMatchingIngredients: true,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CompatibilityScore != out[j].CompatibilityScore {
			return out[i].CompatibilityScore > out[j].CompatibilityScore
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// MatchedIngredients returns the recipe ingredients matched by selected, in recipe order.
func (e *Engine) MatchedIngredients(r recipes.Recipe, selected []string) []string {
	return e.Breakdown(r, selected).Matched
}

// MissingIngredients returns the recipe ingredients not matched by selected, in recipe order.
func (e *Engine) MissingIngredients(r recipes.Recipe, selected []string) []string {
	return e.Breakdown(r, selected).Missing
}

// Breakdown computes matched and missing ingredients in one pass.
// Matched and Missing together are exactly r.Ingredients.
func (e *Engine) Breakdown(r recipes.Recipe, selected []string) Breakdown {
	terms := usableTerms(selected)
	b := Breakdown{Matched: []string{}, Missing: []string{}}
	for _, ing := range r.Ingredients {
		if e.matchesAny(terms, ing) {
			b.Matched = append(b.Matched, ing)
		} else {
			b.Missing = append(b.Missing, ing)
		}
	}
	return b
}

// Score returns the compatibility of a single recipe, 0 for an empty recipe or selection.
func (e *Engine) Score(r recipes.Recipe, selected []string) float64 {
	if len(r.Ingredients) == 0 {
		return 0
	}
	return float64(len(e.Breakdown(r, selected).Matched)) / float64(len(r.Ingredients))
}

func (e *Engine) matchesAny(terms []string, ingredient string) bool {
	for _, t := range terms {
		if e.Matches(t, ingredient) {
			return true
		}
	}
	return false
}

// Blank terms would match every ingredient through substring containment.
func usableTerms(selected []string) []string {
	out := make([]string, 0, len(selected))
	for _, s := range selected {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
