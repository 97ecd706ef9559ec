package importer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"chef-backend/internal/recipes"
)

// FromPDF reads a one-recipe card: the first line is the title, followed by an
// optional "Tempo: 25 min" line, an "Ingredienti" section and a "Preparazione" section.
func FromPDF(data []byte) (recipes.Recipe, error) {
	text, err := extractPDF(data)
	if err != nil {
		return recipes.Recipe{}, fmt.Errorf("extract pdf text: %w", err)
	}
	return ParseCard(text)
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseCard parses the plain text of a recipe card.
func ParseCard(text string) (recipes.Recipe, error) {
	var r recipes.Recipe
	section := ""
	for _, line := range strings.Split(text, "\n") {
		line = cleanText(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		switch {
		case r.Title == "":
			r.Title = line
		case strings.HasPrefix(lower, "tempo") || strings.HasPrefix(lower, "time"):
			r.Time = leadingInt(afterColon(line))
		case strings.HasPrefix(lower, "categoria"):
			r.Category = afterColon(line)
		case strings.HasPrefix(lower, "porzioni"):
			r.Servings = leadingInt(afterColon(line))
		case strings.HasPrefix(lower, "ingredienti"):
			section = "ingredients"
		case strings.HasPrefix(lower, "preparazione") || strings.HasPrefix(lower, "procedimento"):
			section = "instructions"
		case section == "ingredients":
			r.Ingredients = append(r.Ingredients, strings.ToLower(stripBullet(line)))
		case section == "instructions":
			r.Instructions = append(r.Instructions, stripBullet(line))
		}
	}
	if r.Title == "" {
		return recipes.Recipe{}, ErrNoRecipe
	}
	finalize(&r)
	return r, nil
}

func afterColon(line string) string {
	if i := strings.Index(line, ":"); i >= 0 {
		return strings.TrimSpace(line[i+1:])
	}
	return ""
}

// stripBullet removes list markers such as "-", "•" or "1." from the front of a line.
func stripBullet(line string) string {
	line = strings.TrimLeft(line, "-•*· ")
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		line = line[i+1:]
	}
	return strings.TrimSpace(line)
}
