package recipes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

// Source provides the raw recipe list a Catalog is built from.
type Source interface {
	Load(ctx context.Context) ([]Recipe, error)
}

// StaticSource serves a fixed in-memory list.
type StaticSource []Recipe

func (s StaticSource) Load(ctx context.Context) ([]Recipe, error) {
	out := make([]Recipe, len(s))
	for i, r := range s {
		out[i] = r.Clone()
	}
	return out, nil
}

// FileSource reads a catalog from a .json or .xlsx file.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".json":
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		return DecodeJSON(data)
	case ".xlsx":
		return ReadXLSXFile(s.Path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, s.Path)
	}
}

// DecodeJSON parses a JSON array of recipes.
func DecodeJSON(data []byte) ([]Recipe, error) {
	var list []Recipe
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode catalog json: %w", err)
	}
	return list, nil
}

// EncodeJSON renders recipes as an indented JSON array.
func EncodeJSON(list []Recipe) ([]byte, error) {
	return json.MarshalIndent(list, "", "  ")
}
