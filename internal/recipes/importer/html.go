package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"chef-backend/internal/recipes"
)

const recipeScope = `[itemscope][itemtype*="schema.org/Recipe"]`

// FromHTML extracts every schema.org Recipe microdata block in the document.
func FromHTML(r io.Reader) ([]recipes.Recipe, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var out []recipes.Recipe
	doc.Find(recipeScope).Each(func(_ int, s *goquery.Selection) {
		out = append(out, recipeFromSelection(s))
	})
	if len(out) == 0 {
		return nil, ErrNoRecipe
	}
	for i := range out {
		finalize(&out[i])
	}
	return out, nil
}

func recipeFromSelection(s *goquery.Selection) recipes.Recipe {
	r := recipes.Recipe{
		ID:       prop(s, "identifier"),
		Title:    prop(s, "name"),
		Category: prop(s, "recipeCategory"),
		Image:    prop(s, "image"),
	}

	s.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, el *goquery.Selection) {
		if v := cleanText(el.Text()); v != "" {
			r.Ingredients = append(r.Ingredients, v)
		}
	})

	s.Find(`[itemprop="recipeInstructions"]`).Each(func(_ int, el *goquery.Selection) {
		steps := el.Find("li")
		if steps.Length() == 0 {
			if v := cleanText(el.Text()); v != "" {
				r.Instructions = append(r.Instructions, v)
			}
			return
		}
		steps.Each(func(_ int, li *goquery.Selection) {
			if v := cleanText(li.Text()); v != "" {
				r.Instructions = append(r.Instructions, v)
			}
		})
	})

	if d := prop(s, "totalTime"); d != "" {
		r.Time = parseISODuration(d)
	}
	if r.Time == 0 {
		r.Time = parseISODuration(prop(s, "prepTime")) + parseISODuration(prop(s, "cookTime"))
	}
	if v := prop(s, "ratingValue"); v != "" {
		if f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64); err == nil {
			r.Rating = f
		}
	}
	if v := prop(s, "recipeYield"); v != "" {
		r.Servings = leadingInt(v)
	}
	return r
}

// prop reads the first itemprop value, preferring content/src attributes over text.
func prop(s *goquery.Selection, name string) string {
	el := s.Find(`[itemprop="` + name + `"]`).First()
	if el.Length() == 0 {
		return ""
	}
	for _, attr := range []string{"content", "src", "datetime"} {
		if v, ok := el.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return cleanText(el.Text())
}

// parseISODuration converts PT1H30M style durations to whole minutes.
func parseISODuration(raw string) int {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if !strings.HasPrefix(raw, "PT") {
		return 0
	}
	minutes := 0
	num := 0
	for _, ch := range raw[2:] {
		switch {
		case ch >= '0' && ch <= '9':
			num = num*10 + int(ch-'0')
		case ch == 'H':
			minutes += num * 60
			num = 0
		case ch == 'M':
			minutes += num
			num = 0
		case ch == 'S':
			num = 0
		default:
			return 0
		}
	}
	return minutes
}
