package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"chef-backend/internal/discovery"
	"chef-backend/internal/pantry"
	"chef-backend/internal/recipes"
	"chef-backend/internal/suggest"
)

const prompt = "> "

const helpText = `commands:
  add <ingredient>   select an ingredient
  rm <ingredient|n>  remove by exact value, else by list number
  clear              empty the selection
  list               show the selection
  feed               recipes ranked by the selection
  show <id>          recipe detail
  search <text>      search titles, ingredients and categories
  fav <id>           toggle a favorite
  help               this text
  quit               exit
anything else is looked up as an ingredient`

// syncWriter serializes writes from the shell and the typeahead timer.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

type shell struct {
	out       io.Writer
	principal string
	discovery *discovery.Service
	pantry    *pantry.Service
	typeahead *suggest.Typeahead
}

func newShell(out io.Writer, principal string, d *discovery.Service, p *pantry.Service, debounce time.Duration) *shell {
	sh := &shell{out: out, principal: principal, discovery: d, pantry: p}
	sh.typeahead = suggest.NewTypeahead(p.Suggester, debounce, sh.printSuggestions)
	return sh
}

func (sh *shell) close() {
	sh.typeahead.Stop()
}

func (sh *shell) run(ctx context.Context, in *bufio.Scanner) {
	fmt.Fprint(sh.out, prompt)
	for in.Scan() {
		if sh.exec(ctx, in.Text()) {
			return
		}
		fmt.Fprint(sh.out, prompt)
	}
}

// exec runs one input line and reports whether the shell should exit.
func (sh *shell) exec(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(sh.out, helpText)
	case "add":
		st := sh.pantry.Add(ctx, sh.principal, arg)
		if !st.Changed {
			fmt.Fprintln(sh.out, "nothing added")
		}
		sh.printSelection(st.Ingredients)
	case "rm":
		sh.remove(ctx, arg)
	case "clear":
		sh.printSelection(sh.pantry.Clear(ctx, sh.principal).Ingredients)
	case "list":
		sh.printSelection(sh.pantry.List(ctx, sh.principal).Ingredients)
	case "feed":
		sh.printFeed(ctx)
	case "show":
		sh.show(ctx, arg)
	case "search":
		sh.printRecipes(sh.discovery.Search(ctx, sh.principal, arg))
	case "fav":
		fav, err := sh.discovery.ToggleFavorite(ctx, sh.principal, arg)
		if err != nil {
			sh.printErr(err)
			return false
		}
		if fav {
			fmt.Fprintf(sh.out, "recipe %s added to favorites\n", arg)
		} else {
			fmt.Fprintf(sh.out, "recipe %s removed from favorites\n", arg)
		}
	default:
		sh.typeahead.Input(line)
	}
	return false
}

func (sh *shell) remove(ctx context.Context, arg string) {
	target := arg
	current := sh.pantry.List(ctx, sh.principal).Ingredients
	if n, err := strconv.Atoi(arg); err == nil && !slices.Contains(current, arg) {
		if n < 1 || n > len(current) {
			fmt.Fprintf(sh.out, "no ingredient number %d\n", n)
			return
		}
		target = current[n-1]
	}
	st := sh.pantry.Remove(ctx, sh.principal, target)
	if !st.Changed {
		fmt.Fprintf(sh.out, "%q is not selected\n", target)
	}
	sh.printSelection(st.Ingredients)
}

func (sh *shell) show(ctx context.Context, id string) {
	d, err := sh.discovery.Detail(ctx, sh.principal, id)
	if err != nil {
		sh.printErr(err)
		return
	}
	r := d.Recipe
	fmt.Fprintf(sh.out, "%s%s\n", r.Title, favMark(r.IsFavorite))
	fmt.Fprintf(sh.out, "  %s\n", recipeFacts(r))
	if len(d.SelectedIngredients) > 0 {
		fmt.Fprintf(sh.out, "  compatibility %d%%\n", percent(d.CompatibilityScore))
	}
	fmt.Fprintf(sh.out, "  you have: %s\n", joinOrDash(d.MatchedIngredients))
	fmt.Fprintf(sh.out, "  missing:  %s\n", joinOrDash(d.MissingIngredients))
	for i, step := range r.Instructions {
		fmt.Fprintf(sh.out, "  %d. %s\n", i+1, step)
	}
}

func (sh *shell) printFeed(ctx context.Context) {
	feed := sh.discovery.Feed(ctx, sh.principal)
	if len(feed.Recipes) == 0 {
		fmt.Fprintln(sh.out, "no recipe uses the selected ingredients")
		return
	}
	for _, m := range feed.Recipes {
		if len(feed.Ingredients) == 0 {
			fmt.Fprintf(sh.out, "  [%s] %s, %d min%s\n", m.ID, m.Title, m.Time, favMark(m.IsFavorite))
			continue
		}
		fmt.Fprintf(sh.out, "  [%s] %s, %d min, %d%% (%d/%d)%s\n",
			m.ID, m.Title, m.Time, percent(m.CompatibilityScore), m.MatchingIngredients, len(m.Ingredients), favMark(m.IsFavorite))
	}
}

func (sh *shell) printRecipes(list []recipes.Recipe) {
	if len(list) == 0 {
		fmt.Fprintln(sh.out, "no recipes found")
		return
	}
	for _, r := range list {
		fmt.Fprintf(sh.out, "  [%s] %s, %d min%s\n", r.ID, r.Title, r.Time, favMark(r.IsFavorite))
	}
}

func (sh *shell) printSelection(items []string) {
	if len(items) == 0 {
		fmt.Fprintln(sh.out, "no ingredients selected")
		return
	}
	for i, it := range items {
		fmt.Fprintf(sh.out, "  %d. %s\n", i+1, it)
	}
}

func (sh *shell) printSuggestions(query string, results []suggest.Suggestion) {
	if len(results) == 0 {
		fmt.Fprintf(sh.out, "\nno suggestions for %q\n%s", query, prompt)
		return
	}
	values := make([]string, len(results))
	for i, r := range results {
		values[i] = r.Value
	}
	fmt.Fprintf(sh.out, "\nsuggestions: %s (use add <ingredient>)\n%s", strings.Join(values, ", "), prompt)
}

func (sh *shell) printErr(err error) {
	if errors.Is(err, recipes.ErrNotFound) {
		fmt.Fprintln(sh.out, "recipe not found")
		return
	}
	fmt.Fprintf(sh.out, "error: %v\n", err)
}

func favMark(fav bool) string {
	if fav {
		return " *"
	}
	return ""
}

func percent(score float64) int {
	return int(score*100 + 0.5)
}

func recipeFacts(r recipes.Recipe) string {
	facts := []string{}
	if r.Category != "" {
		facts = append(facts, r.Category)
	}
	facts = append(facts, fmt.Sprintf("%d min", r.Time))
	if r.Difficulty != "" {
		facts = append(facts, r.Difficulty)
	}
	if r.Servings > 0 {
		facts = append(facts, fmt.Sprintf("serves %d", r.Servings))
	}
	return strings.Join(facts, ", ")
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
