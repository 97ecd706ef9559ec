package recipes

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxSheet           = "Recipes"
	ingredientSeparator = ";"
	stepSeparator       = "|"
)

var xlsxHeader = []string{
	"id", "title", "rating", "time", "difficulty", "category",
	"servings", "calories", "image", "ingredients", "instructions",
}

// WriteXLSX writes recipes to w as a single-sheet workbook, one row per recipe.
// Ingredients are joined with ";" and instructions with "|".
func WriteXLSX(w io.Writer, list []Recipe) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(xlsxSheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}

	header := make([]interface{}, len(xlsxHeader))
	for i, h := range xlsxHeader {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, r := range list {
		row := []interface{}{
			r.ID, r.Title, r.Rating, r.Time, r.Difficulty, r.Category,
			r.Servings, r.Calories, r.Image,
			strings.Join(r.Ingredients, ingredientSeparator+" "),
			strings.Join(r.Instructions, " "+stepSeparator+" "),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

// ReadXLSXFile opens a workbook from disk and reads it with ReadXLSX.
func ReadXLSXFile(path string) ([]Recipe, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readWorkbook(f)
}

// ReadXLSX parses a workbook produced by WriteXLSX. Columns are located by
// header name so extra or reordered columns are tolerated.
func ReadXLSX(r io.Reader) ([]Recipe, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) ([]Recipe, error) {
	sheet := xlsxSheet
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return []Recipe{}, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "title", "time", "ingredients"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrUnknownFormat, required)
		}
	}

	out := make([]Recipe, 0, len(rows)-1)
	for n, row := range rows[1:] {
		get := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		if get("id") == "" && get("title") == "" {
			continue
		}

		r := Recipe{
			ID:           get("id"),
			Title:        get("title"),
			Difficulty:   get("difficulty"),
			Category:     get("category"),
			Image:        get("image"),
			Ingredients:  splitList(get("ingredients"), ingredientSeparator),
			Instructions: splitList(get("instructions"), stepSeparator),
		}
		line := n + 2
		if r.Time, err = atoiOrZero(get("time")); err != nil {
			return nil, fmt.Errorf("row %d time: %w", line, err)
		}
		if r.Servings, err = atoiOrZero(get("servings")); err != nil {
			return nil, fmt.Errorf("row %d servings: %w", line, err)
		}
		if r.Calories, err = atoiOrZero(get("calories")); err != nil {
			return nil, fmt.Errorf("row %d calories: %w", line, err)
		}
		if raw := get("rating"); raw != "" {
			if r.Rating, err = strconv.ParseFloat(raw, 64); err != nil {
				return nil, fmt.Errorf("row %d rating: %w", line, err)
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func splitList(raw, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiOrZero(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
