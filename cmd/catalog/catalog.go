package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chef-backend/internal/recipes"
	"chef-backend/internal/recipes/importer"
)

// importFiles parses every recipe page and returns them in argument order.
func importFiles(paths []string) ([]recipes.Recipe, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("import: no input files")
	}
	var out []recipes.Recipe
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".html", ".htm":
			list, err := importer.FromHTML(bytes.NewReader(data))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			out = append(out, list...)
		case ".pdf":
			r, err := importer.FromPDF(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			out = append(out, r)
		default:
			return nil, fmt.Errorf("%s: %w", path, recipes.ErrUnknownFormat)
		}
	}
	// Building a catalog validates the imported recipes and rejects duplicate ids.
	if _, err := recipes.NewCatalog(out); err != nil {
		return nil, err
	}
	return out, nil
}

func loadCatalog(ctx context.Context, in string) ([]recipes.Recipe, error) {
	var src recipes.Source = recipes.FileSource{Path: in}
	if in == "" || in == "seed" {
		src = recipes.StaticSource(recipes.Seed())
	}
	catalog, err := recipes.LoadCatalog(ctx, src)
	if err != nil {
		return nil, err
	}
	return catalog.All(), nil
}

func writeCatalog(path string, list []recipes.Recipe) error {
	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := recipes.EncodeJSON(list)
		if err != nil {
			return err
		}
		buf.Write(data)
	case ".xlsx":
		if err := recipes.WriteXLSX(&buf, list); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%s: %w", path, recipes.ErrUnknownFormat)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
