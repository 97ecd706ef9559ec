package recipes

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recipeValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks a single recipe against the catalog constraints.
func Validate(r Recipe) error {
	if err := recipeValidator().Struct(r); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRecipe, r.ID, err)
	}
	for _, ing := range r.Ingredients {
		if strings.TrimSpace(ing) == "" {
			return fmt.Errorf("%w: %q: blank ingredient", ErrInvalidRecipe, r.ID)
		}
	}
	return nil
}

// Catalog is the immutable, ordered recipe collection loaded at startup.
type Catalog struct {
	recipes []Recipe
	byID    map[string]int
}

// NewCatalog validates every recipe and indexes them by id, keeping input order.
func NewCatalog(list []Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]Recipe, 0, len(list)),
		byID:    make(map[string]int, len(list)),
	}
	for _, r := range list {
		if err := Validate(r); err != nil {
			return nil, err
		}
		if _, exists := c.byID[r.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
		}
		c.byID[r.ID] = len(c.recipes)
		c.recipes = append(c.recipes, r.Clone())
	}
	return c, nil
}

// LoadCatalog reads every recipe from src and builds a Catalog.
func LoadCatalog(ctx context.Context, src Source) (*Catalog, error) {
	list, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return NewCatalog(list)
}

// All returns a copy of the catalog in catalog order.
func (c *Catalog) All() []Recipe {
	out := make([]Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r.Clone()
	}
	return out
}

// Get returns the recipe with the given id.
func (c *Catalog) Get(id string) (Recipe, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Recipe{}, ErrNotFound
	}
	return c.recipes[idx].Clone(), nil
}

// Featured returns the first n recipes in catalog order.
func (c *Catalog) Featured(n int) []Recipe {
	if n <= 0 {
		return []Recipe{}
	}
	if n > len(c.recipes) {
		n = len(c.recipes)
	}
	out := make([]Recipe, n)
	for i := 0; i < n; i++ {
		out[i] = c.recipes[i].Clone()
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.recipes)
}
