package discovery

import (
	"context"

	"chef-backend/internal/favorites"
	"chef-backend/internal/matching"
	"chef-backend/internal/recipes"
	"chef-backend/internal/selection"
	"chef-backend/internal/shared/metrics"
)

// Service answers catalog queries for a principal, combining the catalog with
// that principal's selection and favorites.
type Service struct {
	Catalog       *recipes.Catalog
	Engine        *matching.Engine
	Selections    *selection.Registry
	Favorites     *favorites.Registry
	FeaturedCount int
}

// Feed is the ranked recipe list for the principal's current selection.
type Feed struct {
	Ingredients []string         `json:"ingredients"`
	Recipes     []matching.Match `json:"recipes"`
}

// Detail is a single recipe with its ingredient breakdown.
type Detail struct {
	Recipe              recipes.Recipe `json:"recipe"`
	SelectedIngredients []string       `json:"selectedIngredients"`
	CompatibilityScore  float64        `json:"compatibilityScore"`
	MatchedIngredients  []string       `json:"matchedIngredients"`
	MissingIngredients  []string       `json:"missingIngredients"`
}

// Search runs a text search over the catalog; an empty query lists everything.
func (s *Service) Search(ctx context.Context, principal, query string) []recipes.Recipe {
	return s.markFavorites(ctx, principal, matching.SearchByText(query, s.Catalog.All()))
}

// Featured returns the leading catalog entries shown on the home view.
func (s *Service) Featured(ctx context.Context, principal string) []recipes.Recipe {
	return s.markFavorites(ctx, principal, s.Catalog.Featured(s.FeaturedCount))
}

// Feed ranks the catalog against the principal's selection.
func (s *Service) Feed(ctx context.Context, principal string) Feed {
	selected := s.Selections.For(ctx, principal).Snapshot()
	ranked := s.Engine.FilterAndRank(selected, s.Catalog.All())

	favs := s.Favorites.For(ctx, principal)
	for i := range ranked {
		ranked[i].IsFavorite = favs.Contains(ranked[i].ID)
	}
	metrics.ObserveFeed(len(selected) > 0, len(ranked))
	return Feed{Ingredients: selected, Recipes: ranked}
}

// Detail returns recipe id with matched and missing ingredients for the principal.
func (s *Service) Detail(ctx context.Context, principal, id string) (Detail, error) {
	r, err := s.Catalog.Get(id)
	if err != nil {
		return Detail{}, err
	}
	r.IsFavorite = s.Favorites.For(ctx, principal).Contains(r.ID)

	selected := s.Selections.For(ctx, principal).Snapshot()
	b := s.Engine.Breakdown(r, selected)
	return Detail{
		Recipe:              r,
		SelectedIngredients: selected,
		CompatibilityScore:  s.Engine.Score(r, selected),
		MatchedIngredients:  b.Matched,
		MissingIngredients:  b.Missing,
	}, nil
}

// ToggleFavorite flips the favorite flag of a known recipe.
func (s *Service) ToggleFavorite(ctx context.Context, principal, id string) (bool, error) {
	if _, err := s.Catalog.Get(id); err != nil {
		return false, err
	}
	return s.Favorites.For(ctx, principal).Toggle(ctx, id), nil
}

func (s *Service) markFavorites(ctx context.Context, principal string, list []recipes.Recipe) []recipes.Recipe {
	favs := s.Favorites.For(ctx, principal)
	for i := range list {
		list[i].IsFavorite = favs.Contains(list[i].ID)
	}
	return list
}
