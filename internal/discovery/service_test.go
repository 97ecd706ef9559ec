package discovery

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"chef-backend/internal/favorites"
	"chef-backend/internal/matching"
	"chef-backend/internal/recipes"
	"chef-backend/internal/selection"
	"chef-backend/internal/shared/storage/kv/memory"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	catalog, err := recipes.NewCatalog(recipes.Seed())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	storage := memory.New()
	return &Service{
		Catalog:       catalog,
		Engine:        matching.NewEngine(nil),
		Selections:    selection.NewRegistry(storage),
		Favorites:     favorites.NewRegistry(storage),
		FeaturedCount: 3,
	}
}

func TestFeedRanksBySelection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	svc.Selections.For(ctx, "guest:a").Add(ctx, "Pomodoro")

	feed := svc.Feed(ctx, "guest:a")
	if !reflect.DeepEqual(feed.Ingredients, []string{"pomodoro"}) {
		t.Fatalf("ingredients = %v", feed.Ingredients)
	}
	var ids []string
	for _, m := range feed.Recipes {
		ids = append(ids, m.ID)
	}
	if !reflect.DeepEqual(ids, []string{"6", "5", "3"}) {
		t.Fatalf("ranked ids = %v", ids)
	}
}

func TestFeedWithoutSelectionListsCatalog(t *testing.T) {
	svc := newTestService(t)
	feed := svc.Feed(context.Background(), "guest:b")
	if len(feed.Recipes) != svc.Catalog.Len() {
		t.Fatalf("expected full catalog, got %d", len(feed.Recipes))
	}
	for _, m := range feed.Recipes {
		if m.CompatibilityScore != 0 || m.HasMatchingIngredients {
			t.Fatalf("expected default annotations, got %+v", m)
		}
	}
}

func TestDetailBreakdown(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	svc.Selections.For(ctx, "default").Add(ctx, "pomodoro")

	d, err := svc.Detail(ctx, "default", "5")
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if !reflect.DeepEqual(d.MatchedIngredients, []string{"pomodoro"}) {
		t.Fatalf("matched = %v", d.MatchedIngredients)
	}
	if !reflect.DeepEqual(d.MissingIngredients, []string{"pasta", "basilico", "aglio", "olio"}) {
		t.Fatalf("missing = %v", d.MissingIngredients)
	}
	if d.CompatibilityScore != 0.2 {
		t.Fatalf("score = %v", d.CompatibilityScore)
	}
}

func TestDetailUnknownRecipe(t *testing.T) {
	_, err := newTestService(t).Detail(context.Background(), "default", "404")
	if !errors.Is(err, recipes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleFavoriteMarksListings(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	fav, err := svc.ToggleFavorite(ctx, "guest:a", "2")
	if err != nil || !fav {
		t.Fatalf("toggle = %v, %v", fav, err)
	}
	featured := svc.Featured(ctx, "guest:a")
	if len(featured) != 3 || !featured[1].IsFavorite || featured[0].IsFavorite {
		t.Fatalf("unexpected featured flags: %+v", featured)
	}
	if other := svc.Featured(ctx, "guest:b"); other[1].IsFavorite {
		t.Fatalf("favorite leaked across principals")
	}
	if _, err := svc.ToggleFavorite(ctx, "guest:a", "nope"); !errors.Is(err, recipes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchByTitleAndIngredient(t *testing.T) {
	svc := newTestService(t)
	got := svc.Search(context.Background(), "default", "gorgonzola")
	if len(got) != 1 || got[0].ID != "9" {
		t.Fatalf("unexpected search result: %+v", got)
	}
}
