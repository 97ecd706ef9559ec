package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// Status is the health payload.
type Status struct {
	OK       bool   `json:"ok"`
	Recipes  int    `json:"recipes"`
	Database string `json:"database,omitempty"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB          *sql.DB
	RecipeCount func() int
}

// NewService constructs a new health service. db may be nil when no database is configured.
func NewService(db *sql.DB, recipeCount func() int) *Service {
	return &Service{DB: db, RecipeCount: recipeCount}
}

// Status reports catalog size and, when configured, database reachability.
// An empty catalog or a failed ping marks the service unhealthy.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true}
	if s.RecipeCount != nil {
		st.Recipes = s.RecipeCount()
		if st.Recipes == 0 {
			st.OK = false
		}
	}
	if s.DB != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := s.DB.PingContext(pingCtx); err != nil {
			st.OK = false
			st.Database = "unreachable"
		} else {
			st.Database = "ok"
		}
	}
	return st
}
