package importer

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"chef-backend/internal/recipes"
)

// ErrNoRecipe is returned when a document contains no recognizable recipe.
var ErrNoRecipe = errors.New("no recipe found")

// finalize fills the fields a catalog entry needs but a source may omit.
func finalize(r *recipes.Recipe) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Time <= 0 {
		r.Time = 1
	}
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Instructions == nil {
		r.Instructions = []string{}
	}
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			break
		}
		n = n*10 + int(ch-'0')
	}
	return n
}
