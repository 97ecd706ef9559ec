package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"chef-backend/internal/discovery"
	"chef-backend/internal/favorites"
	"chef-backend/internal/matching"
	"chef-backend/internal/pantry"
	"chef-backend/internal/recipes"
	"chef-backend/internal/selection"
	"chef-backend/internal/shared/storage/kv/memory"
	"chef-backend/internal/suggest"
)

func newTestShell(t *testing.T) (*shell, *syncWriter, *bytes.Buffer) {
	t.Helper()
	catalog, err := recipes.NewCatalog(recipes.Seed())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	storage := memory.New()
	selections := selection.NewRegistry(storage)
	d := &discovery.Service{
		Catalog:       catalog,
		Engine:        matching.NewEngine(nil),
		Selections:    selections,
		Favorites:     favorites.NewRegistry(storage),
		FeaturedCount: 3,
	}
	p := &pantry.Service{Selections: selections, Suggester: suggest.NewSuggester(nil)}

	buf := &bytes.Buffer{}
	out := &syncWriter{w: buf}
	sh := newShell(out, "default", d, p, 50*time.Millisecond)
	t.Cleanup(sh.close)
	return sh, out, buf
}

func output(out *syncWriter, buf *bytes.Buffer) string {
	out.mu.Lock()
	defer out.mu.Unlock()
	s := buf.String()
	buf.Reset()
	return s
}

func TestShellAddListRemove(t *testing.T) {
	sh, out, buf := newTestShell(t)
	ctx := context.Background()

	sh.exec(ctx, "add  Pomodoro ")
	sh.exec(ctx, "add mozzarella")
	if got := output(out, buf); !strings.Contains(got, "1. pomodoro") || !strings.Contains(got, "2. mozzarella") {
		t.Fatalf("unexpected add output %q", got)
	}

	sh.exec(ctx, "rm 1")
	if got := output(out, buf); strings.Contains(got, "pomodoro") || !strings.Contains(got, "1. mozzarella") {
		t.Fatalf("unexpected rm output %q", got)
	}

	sh.exec(ctx, "rm Mozzarella")
	if got := output(out, buf); !strings.Contains(got, "is not selected") {
		t.Fatalf("rm should be exact, got %q", got)
	}
}

func TestShellRemovesNumericIngredientByValue(t *testing.T) {
	sh, out, buf := newTestShell(t)
	ctx := context.Background()

	sh.exec(ctx, "add uova")
	sh.exec(ctx, "add 00")
	sh.exec(ctx, "add 1")
	output(out, buf)

	sh.exec(ctx, "rm 1")
	got := output(out, buf)
	if !strings.Contains(got, "1. uova") || !strings.Contains(got, "2. 00") || strings.Contains(got, "3.") {
		t.Fatalf("rm should match the value 1 before the position, got %q", got)
	}

	sh.exec(ctx, "rm 2")
	if got := output(out, buf); !strings.Contains(got, "1. uova") || strings.Contains(got, "00") {
		t.Fatalf("rm 2 should remove the second entry, got %q", got)
	}
}

func TestShellFeedRanksCaprese(t *testing.T) {
	sh, out, buf := newTestShell(t)
	ctx := context.Background()
	sh.exec(ctx, "add pomodoro")
	sh.exec(ctx, "add mozzarella")
	output(out, buf)

	sh.exec(ctx, "feed")
	got := output(out, buf)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) == 0 || !strings.Contains(lines[0], "Insalata Caprese") || !strings.Contains(lines[0], "50%") {
		t.Fatalf("expected caprese first, got %q", got)
	}
}

func TestShellShowAndFavorite(t *testing.T) {
	sh, out, buf := newTestShell(t)
	ctx := context.Background()

	sh.exec(ctx, "fav 4")
	sh.exec(ctx, "show 4")
	got := output(out, buf)
	if !strings.Contains(got, "added to favorites") || !strings.Contains(got, "Tiramisù *") {
		t.Fatalf("unexpected output %q", got)
	}

	sh.exec(ctx, "show 99")
	if got := output(out, buf); !strings.Contains(got, "recipe not found") {
		t.Fatalf("expected not found, got %q", got)
	}
}

func TestShellQuit(t *testing.T) {
	sh, _, _ := newTestShell(t)
	if !sh.exec(context.Background(), "quit") {
		t.Fatalf("quit should end the shell")
	}
	if sh.exec(context.Background(), "   ") {
		t.Fatalf("blank line should not end the shell")
	}
}

func TestShellTypeaheadPrintsLatestQuery(t *testing.T) {
	sh, out, buf := newTestShell(t)
	ctx := context.Background()

	sh.exec(ctx, "moz")
	sh.exec(ctx, "pol")

	deadline := time.Now().Add(2 * time.Second)
	var got string
	for time.Now().Before(deadline) {
		out.mu.Lock()
		got = buf.String()
		out.mu.Unlock()
		if strings.Contains(got, "suggestions:") {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !strings.Contains(got, "suggestions: pollo") {
		t.Fatalf("expected suggestions for the latest query, got %q", got)
	}
	if strings.Contains(got, "mozzarella") {
		t.Fatalf("superseded query should not be evaluated, got %q", got)
	}
}
