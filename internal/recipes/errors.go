package recipes

import "errors"

var (
	ErrNotFound      = errors.New("recipe not found")
	ErrInvalidRecipe = errors.New("invalid recipe")
	ErrDuplicateID   = errors.New("duplicate recipe id")
	ErrUnknownFormat = errors.New("unknown catalog format")
)
