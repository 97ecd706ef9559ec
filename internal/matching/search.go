package matching

import (
	"strings"

	"chef-backend/internal/recipes"
)

// SearchByText returns recipes whose title, any ingredient or category contains
// query, case-insensitively, in catalog order. An empty query returns the catalog.
func SearchByText(query string, catalog []recipes.Recipe) []recipes.Recipe {
	if query == "" {
		return catalog
	}
	q := strings.ToLower(query)
	out := []recipes.Recipe{}
	for _, r := range catalog {
		if textMatches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func textMatches(r recipes.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(r.Category), q)
}
