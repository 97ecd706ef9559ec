package recipes

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"
)

// PGSource reads and writes the catalog in the recipes table.
type PGSource struct {
	DB *sql.DB
}

func (s PGSource) Load(ctx context.Context) ([]Recipe, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT data FROM recipes ORDER BY position ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("select recipes: %w", err)
	}
	defer rows.Close()

	out := []Recipe{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		var r Recipe
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("decode recipe: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return out, nil
}

// Replace swaps the stored catalog for list inside a single transaction.
// Catalog order is kept in the position column.
func (s PGSource) Replace(ctx context.Context, list []Recipe) error {
	for _, r := range list {
		if err := Validate(r); err != nil {
			return err
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recipes`); err != nil {
		return fmt.Errorf("clear recipes: %w", err)
	}
	for i, r := range list {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode recipe %s: %w", r.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
INSERT INTO recipes (id, position, title, category, time_minutes, data)
VALUES ($1, $2, $3, $4, $5, $6)`,
			r.ID, i, r.Title, r.Category, r.Time, data,
		)
		if err != nil {
			return fmt.Errorf("insert recipe %s: %w", r.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
