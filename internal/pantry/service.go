package pantry

import (
	"context"

	"chef-backend/internal/selection"
	"chef-backend/internal/suggest"
)

// Service manages a principal's ingredient selection and offers completions.
type Service struct {
	Selections *selection.Registry
	Suggester  *suggest.Suggester
}

// State is the selection after an operation.
type State struct {
	Ingredients []string `json:"ingredients"`
	Changed     bool     `json:"changed"`
}

// List returns the principal's selection in insertion order.
func (s *Service) List(ctx context.Context, principal string) State {
	return State{Ingredients: s.Selections.For(ctx, principal).Snapshot()}
}

// Add selects ingredient; blank or duplicate input leaves the selection unchanged.
func (s *Service) Add(ctx context.Context, principal, ingredient string) State {
	store := s.Selections.For(ctx, principal)
	changed := store.Add(ctx, ingredient)
	return State{Ingredients: store.Snapshot(), Changed: changed}
}

// Remove drops ingredient by exact match.
func (s *Service) Remove(ctx context.Context, principal, ingredient string) State {
	store := s.Selections.For(ctx, principal)
	changed := store.Remove(ctx, ingredient)
	return State{Ingredients: store.Snapshot(), Changed: changed}
}

// Clear empties the selection; Changed is false when it was already empty.
func (s *Service) Clear(ctx context.Context, principal string) State {
	store := s.Selections.For(ctx, principal)
	changed := store.Len() > 0
	store.Clear(ctx)
	return State{Ingredients: store.Snapshot(), Changed: changed}
}

// Suggest returns typeahead completions for query.
func (s *Service) Suggest(query string) []suggest.Suggestion {
	return s.Suggester.Suggest(query)
}
